package main

import "github.com/NataliiaYakorieva/goit-algo-fp/config"
import "github.com/NataliiaYakorieva/goit-algo-fp/xlogconfig"
import "github.com/hlandau/buildinfo"
import "github.com/hlandau/xlog"
import "gopkg.in/alecthomas/kingpin.v2"
import "gopkg.in/hlandau/easymetric.v1/adaptexpvar"
import "expvar"
import "fmt"
import "io"
import "os"
import "strings"

var log, Log = xlog.New("llist")

var (
	app = kingpin.New("llist", "Singly linked list tool")

	configFlag      = app.Flag("config", "Path to configuration file").String()
	typeFlag        = app.Flag("type", "Element type (int|float|string)").String()
	strategyFlag    = app.Flag("strategy", "Sort strategy (topdown|bottomup)").String()
	statsFlag       = app.Flag("stats", "Print metrics to stderr after running").Bool()
	logFileFlag     = app.Flag("log-file", "Append log output to this file").String()
	logSeverityFlag = app.Flag("log-severity", "Log severity limit (e.g. DEBUG, NOTICE, ERROR)").String()
	syslogFlag      = app.Flag("syslog", "Log to syslog").Bool()
	journalFlag     = app.Flag("journal", "Log to the systemd journal").Bool()

	demoCmd = app.Command("demo", "Build two sample lists, then reverse, sort and merge them")

	reverseCmd    = app.Command("reverse", "Reverse a list")
	reverseValues = reverseCmd.Arg("values", "List values").Strings()

	sortCmd    = app.Command("sort", "Sort a list")
	sortValues = sortCmd.Arg("values", "List values").Strings()

	middleCmd    = app.Command("middle", "Show the node that ends the first half of a list")
	middleValues = middleCmd.Arg("values", "List values").Required().Strings()

	mergeCmd = app.Command("merge", "Merge two sorted lists")
	mergeA   = mergeCmd.Arg("a", "First sorted list, comma-separated").Required().String()
	mergeB   = mergeCmd.Arg("b", "Second sorted list, comma-separated").Required().String()

	randomCmd   = app.Command("random", "Sort a list of pseudo-random integers")
	randomCount = randomCmd.Flag("count", "Number of values").Default("16").Int()
	randomMax   = randomCmd.Flag("max", "Values are drawn from [0, max)").Default("100").Int()
	randomSeed  = randomCmd.Flag("seed", "Random seed").Default("1").Uint64()
)

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ','
	})
}

func buildRequest(cmd string) *request {
	req := &request{Command: cmd}
	switch cmd {
	case reverseCmd.FullCommand():
		req.Values = *reverseValues
	case sortCmd.FullCommand():
		req.Values = *sortValues
	case middleCmd.FullCommand():
		req.Values = *middleValues
	case mergeCmd.FullCommand():
		req.A = splitList(*mergeA)
		req.B = splitList(*mergeB)
	case randomCmd.FullCommand():
		req.Count = *randomCount
		req.Max = *randomMax
		req.Seed = *randomSeed
	}
	return req
}

// Command line flags override the configuration file.
func applyFlags(cfg *config.Config) {
	if *typeFlag != "" {
		cfg.Type = *typeFlag
	}
	if *strategyFlag != "" {
		cfg.Strategy = *strategyFlag
	}
	if *statsFlag {
		cfg.Stats = true
	}
	if *logFileFlag != "" {
		cfg.Log.File = *logFileFlag
	}
	if *logSeverityFlag != "" {
		cfg.Log.Severity = *logSeverityFlag
	}
	if *syslogFlag {
		cfg.Log.Syslog = true
	}
	if *journalFlag {
		cfg.Log.Journal = true
	}
}

func printStats(w io.Writer) {
	expvar.Do(func(kv expvar.KeyValue) {
		if strings.HasPrefix(kv.Key, "linkedlist.") {
			fmt.Fprintf(w, "%s = %s\n", kv.Key, kv.Value)
		}
	})
}

func main() {
	app.Version(buildinfo.Full())
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	ld := config.Loader{ProgramName: "llist"}
	err := ld.Load(*configFlag, &cfg)
	if err != nil {
		log.Fatale(err, "cannot load configuration")
	}

	applyFlags(&cfg)
	err = cfg.Validate()
	if err != nil {
		log.Fatale(err, "invalid configuration")
	}

	logFile, err := xlogconfig.Setup(xlogconfig.Options{
		Severity:       cfg.Log.Severity,
		File:           cfg.Log.File,
		Syslog:         cfg.Log.Syslog,
		SyslogFacility: cfg.Log.Facility,
		Journal:        cfg.Log.Journal,
	})
	if err != nil {
		log.Fatale(err, "cannot set up logging")
	}
	defer logFile.Close()

	adaptexpvar.Register()

	if ld.Path() != "" {
		log.Debugf("using configuration file %s", ld.Path())
	}

	err = run(os.Stdout, &cfg, buildRequest(cmd))
	if err != nil {
		log.Errore(err, cmd)
		logFile.Close()
		os.Exit(1)
	}

	if cfg.Stats {
		printStats(os.Stderr)
	}
}
