// Package logging holds the process wide logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is shared by every package. It writes to stderr until Setup is called.
var Logger = New(os.Stderr)

func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "molasses-mike",
	})
}

// Setup parses level and applies it to Logger.
func Setup(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	return nil
}
