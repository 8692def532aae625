// Package logging holds the shared logger for the analytical core.
// Calculation code stays silent; only orchestration-level code (catalog
// fan-out, forecasting) logs, and at debug/warn levels so library users
// see nothing by default.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance. Embedding applications may replace
// it or adjust its level before running an analysis.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.WarnLevel,
	Prefix:          "magicslate",
})

// SetLevel adjusts the shared logger's verbosity.
func SetLevel(level log.Level) {
	Logger.SetLevel(level)
}
