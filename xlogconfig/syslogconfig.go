//go:build !windows

package xlogconfig

import "github.com/hlandau/xlog"
import "log/syslog"
import "strings"
import "gopkg.in/hlandau/svcutils.v1/exepath"
import "github.com/coreos/go-systemd/journal"
import "fmt"

var facilities = map[string]syslog.Priority{
	"kern":     syslog.LOG_KERN,
	"user":     syslog.LOG_USER,
	"mail":     syslog.LOG_MAIL,
	"daemon":   syslog.LOG_DAEMON,
	"auth":     syslog.LOG_AUTH,
	"syslog":   syslog.LOG_SYSLOG,
	"lpr":      syslog.LOG_LPR,
	"news":     syslog.LOG_NEWS,
	"uucp":     syslog.LOG_UUCP,
	"cron":     syslog.LOG_CRON,
	"authpriv": syslog.LOG_AUTHPRIV,
	"ftp":      syslog.LOG_FTP,
	"local0":   syslog.LOG_LOCAL0,
	"local1":   syslog.LOG_LOCAL1,
	"local2":   syslog.LOG_LOCAL2,
	"local3":   syslog.LOG_LOCAL3,
	"local4":   syslog.LOG_LOCAL4,
	"local5":   syslog.LOG_LOCAL5,
	"local6":   syslog.LOG_LOCAL6,
	"local7":   syslog.LOG_LOCAL7,
}

func facilityName(name string) string {
	if name == "" {
		return "daemon"
	}
	return strings.ToLower(name)
}

func programName() string {
	if exepath.ProgramName == "" {
		return "llist"
	}
	return exepath.ProgramName
}

func openSyslog(facility string, sev xlog.Severity) error {
	f, ok := facilities[facilityName(facility)]
	if !ok {
		return fmt.Errorf("unknown syslog facility %q", facility)
	}

	w, err := syslog.New(f|syslog.LOG_DEBUG, programName())
	if err != nil {
		return fmt.Errorf("cannot open syslog: %w", err)
	}

	sink := xlog.NewSyslogSink(w)
	sink.SetSeverity(sev)
	xlog.RootSink.Add(sink)
	return nil
}

func openJournal(facility string, sev xlog.Severity) {
	if !journal.Enabled() {
		return
	}

	xlog.RootSink.Add(&journalSink{
		MinSeverity: sev,
		Tags: map[string]string{
			"SYSLOG_FACILITY": facilityName(facility),
			"SYSLOG_TAG":      programName(),
		},
	})
}

type journalSink struct {
	Tags        map[string]string
	MinSeverity xlog.Severity
}

func (s *journalSink) ReceiveLocally(sev xlog.Severity, format string, params ...interface{}) {
	s.ReceiveFromChild(sev, format, params...)
}

func (s *journalSink) ReceiveFromChild(sev xlog.Severity, format string, params ...interface{}) {
	if sev > s.MinSeverity {
		return
	}

	journal.Send(fmt.Sprintf(format, params...), journal.Priority(sev.Syslog()), s.Tags)
	// ignore errors
}
