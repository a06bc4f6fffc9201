package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger at the given level
func SetupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "wildhand",
	})
}

// SetupStructuredLogger configures a logfmt logger for non-interactive use
func SetupStructuredLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}
