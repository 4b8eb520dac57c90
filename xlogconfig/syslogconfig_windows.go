package xlogconfig

import "errors"
import "github.com/hlandau/xlog"

func openSyslog(facility string, sev xlog.Severity) error {
	return errors.New("syslog is not supported on this platform")
}

func openJournal(facility string, sev xlog.Severity) {
}
