// Package config loads the llist configuration file.
//
// The file is TOML. If no path is given explicitly, a fixed list of locations
// is searched and the first readable file is used. Paths beginning with
// "$BIN/" are relative to the directory containing the executable.
package config

import "github.com/BurntSushi/toml"
import "github.com/hlandau/xlog"
import "gopkg.in/hlandau/svcutils.v1/exepath"
import "fmt"
import "os"
import "path/filepath"
import "strings"

var log, Log = xlog.New("config")

type Config struct {
	// Element type of the lists built from command line values.
	Type string `toml:"type"`

	// Sort strategy: "topdown" (split at the middle node) or "bottomup".
	Strategy string `toml:"strategy"`

	// Print metrics after running a command.
	Stats bool `toml:"stats"`

	Log LogConfig `toml:"log"`
}

type LogConfig struct {
	Severity string `toml:"severity"`
	File     string `toml:"file"`
	Syslog   bool   `toml:"syslog"`
	Facility string `toml:"facility"`
	Journal  bool   `toml:"journal"`
}

var (
	Types      = []string{"int", "float", "string"}
	Strategies = []string{"topdown", "bottomup"}
)

func Default() Config {
	return Config{
		Type:     "int",
		Strategy: "topdown",
		Log: LogConfig{
			Severity: "NOTICE",
			Facility: "daemon",
		},
	}
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

func (cfg *Config) Validate() error {
	if !oneOf(cfg.Type, Types) {
		return fmt.Errorf("unsupported element type %q (want one of %s)", cfg.Type, strings.Join(Types, ", "))
	}
	if !oneOf(cfg.Strategy, Strategies) {
		return fmt.Errorf("unsupported sort strategy %q (want one of %s)", cfg.Strategy, strings.Join(Strategies, ", "))
	}
	return nil
}

type Loader struct {
	ProgramName string

	// Locations searched when no explicit path is given. Built from
	// ProgramName if nil.
	Paths []string

	path string // file actually used, or ""
}

// Returns the path to the config file which was actually used, or "" if no
// config file was used.
func (ld *Loader) Path() string {
	return ld.path
}

func (ld *Loader) buildPaths() {
	ld.Paths = []string{
		fmt.Sprintf("$BIN/../etc/%s/%s.conf", ld.ProgramName, ld.ProgramName),
		fmt.Sprintf("$BIN/../etc/%s.conf", ld.ProgramName),
		fmt.Sprintf("/etc/%s/%s.conf", ld.ProgramName, ld.ProgramName),
		fmt.Sprintf("/etc/%s.conf", ld.ProgramName),
	}
}

func resolvePath(p string) string {
	if !strings.HasPrefix(p, "$BIN/") {
		return p
	}

	return filepath.Join(filepath.Dir(exepath.Abs), p[5:])
}

// Decode the configuration file into cfg, leaving fields the file does not
// mention untouched. An explicit path must be readable; the search locations
// are optional.
func (ld *Loader) Load(explicitPath string, cfg *Config) error {
	if ld.Paths == nil {
		ld.buildPaths()
	}

	if explicitPath != "" {
		b, err := os.ReadFile(explicitPath)
		if err != nil {
			return fmt.Errorf("cannot read config file %q: %w", explicitPath, err)
		}

		return ld.decode(explicitPath, b, cfg)
	}

	for _, p := range ld.Paths {
		p = resolvePath(p)
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}

		// read only one configuration file
		return ld.decode(p, b, cfg)
	}

	return nil
}

func (ld *Loader) decode(path string, b []byte, cfg *Config) error {
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return fmt.Errorf("cannot decode config file %q: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		log.Warnf("%s: unknown configuration key %q", path, k.String())
	}

	ld.path = path
	log.Debugf("loaded configuration from %s", path)
	return nil
}
