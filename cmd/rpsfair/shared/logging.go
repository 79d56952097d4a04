package shared

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger on stderr. Only warnings and errors
// are shown unless debug is set, so game output on stdout stays clean.
func SetupLogger(debug bool) *log.Logger {
	return newLogger(os.Stderr, debug, log.WarnLevel)
}

// SetupFileLogger writes diagnostics to path, truncating it. The returned
// close function must be called before the process exits.
func SetupFileLogger(path string, debug bool) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return newLogger(f, debug, log.InfoLevel), f.Close, nil
}

func newLogger(w io.Writer, debug bool, level log.Level) *log.Logger {
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "rpsfair",
	})
}
