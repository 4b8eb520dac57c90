// Package xlogconfig applies a set of logging options to xlog: a severity
// limit on standard error, an append-only log file, syslog and the systemd
// journal.
package xlogconfig

import "github.com/hlandau/xlog"
import "fmt"
import "os"

type Options struct {
	// Severity limit for standard error and for every sink opened here, as
	// accepted by xlog.ParseSeverity. Empty means DEBUG.
	Severity string

	// Append log lines to this file if set.
	File string

	Syslog         bool
	SyslogFacility string // default "daemon"

	Journal bool
}

func parseSeverity(s string) (xlog.Severity, error) {
	if s == "" {
		return xlog.SevDebug, nil
	}

	sev, ok := xlog.ParseSeverity(s)
	if !ok {
		return sev, fmt.Errorf("unknown log severity %q", s)
	}

	return sev, nil
}

func openFileSink(path string, sev xlog.Severity) (*xlog.WriterSink, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	sink := xlog.NewWriterSink(f)
	sink.SetSeverity(sev)
	return sink, f, nil
}

// Apply opts to xlog.StderrSink and add the requested sinks to
// xlog.RootSink. The returned file is the log file, or nil if none was
// opened; the caller closes it.
func Setup(opts Options) (*os.File, error) {
	sev, err := parseSeverity(opts.Severity)
	if err != nil {
		return nil, err
	}

	xlog.StderrSink.SetSeverity(sev)

	var logFile *os.File
	if opts.File != "" {
		sink, f, err := openFileSink(opts.File, sev)
		if err != nil {
			return nil, err
		}

		xlog.RootSink.Add(sink)
		logFile = f
	}

	if opts.Syslog {
		err = openSyslog(opts.SyslogFacility, sev)
		if err != nil {
			if logFile != nil {
				logFile.Close()
			}
			return nil, err
		}
	}

	if opts.Journal {
		openJournal(opts.SyslogFacility, sev)
	}

	return logFile, nil
}
