package config

import "os"
import "path/filepath"
import "reflect"
import "testing"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	fn := filepath.Join(dir, name)
	err := os.WriteFile(fn, []byte(content), 0644)
	if err != nil {
		t.Fatalf("cannot write %s: %v", fn, err)
	}
	return fn
}

func TestLoadExplicit(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "llist.conf", `
type = "string"
strategy = "bottomup"
stats = true

[log]
severity = "DEBUG"
file = "/tmp/llist.log"
`)

	cfg := Default()
	ld := Loader{ProgramName: "llist", Paths: []string{}}
	err := ld.Load(fn, &cfg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	expected := Config{
		Type:     "string",
		Strategy: "bottomup",
		Stats:    true,
		Log: LogConfig{
			Severity: "DEBUG",
			File:     "/tmp/llist.log",
			Facility: "daemon",
		},
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Fatalf("got %+v, expected %+v", cfg, expected)
	}
	if ld.Path() != fn {
		t.Fatalf("got path %#v, expected %#v", ld.Path(), fn)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestLoadSearch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "second.conf", `strategy = "bottomup"`)

	cfg := Default()
	ld := Loader{
		Paths: []string{filepath.Join(dir, "missing.conf"), fn, writeFile(t, dir, "third.conf", `type = "float"`)},
	}
	err := ld.Load("", &cfg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Strategy != "bottomup" || cfg.Type != "int" {
		t.Fatalf("got %+v, expected only the first readable file to apply", cfg)
	}
	if ld.Path() != fn {
		t.Fatalf("got path %#v, expected %#v", ld.Path(), fn)
	}
}

func TestLoadNothing(t *testing.T) {
	cfg := Default()
	ld := Loader{Paths: []string{filepath.Join(t.TempDir(), "missing.conf")}}
	if err := ld.Load("", &cfg); err != nil {
		t.Fatalf("missing optional config produced error: %v", err)
	}
	if ld.Path() != "" || !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("config changed without a file")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	ld := Loader{Paths: []string{}}

	if err := ld.Load(filepath.Join(dir, "missing.conf"), &cfg); err == nil {
		t.Fatalf("missing explicit config accepted")
	}

	fn := writeFile(t, dir, "bad.conf", `type = `)
	if err := ld.Load(fn, &cfg); err == nil {
		t.Fatalf("malformed config accepted")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Type = "complex"
	if cfg.Validate() == nil {
		t.Fatalf("unsupported type accepted")
	}

	cfg = Default()
	cfg.Strategy = "quick"
	if cfg.Validate() == nil {
		t.Fatalf("unsupported strategy accepted")
	}
}

func TestResolvePath(t *testing.T) {
	if p := resolvePath("/etc/llist.conf"); p != "/etc/llist.conf" {
		t.Fatalf("got %#v", p)
	}
	if p := resolvePath("$BIN/../etc/llist.conf"); filepath.Base(p) != "llist.conf" {
		t.Fatalf("got %#v", p)
	}
}
