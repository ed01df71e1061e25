package utils

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// NewLogger creates a component logger writing to output.
func NewLogger(output io.Writer, prefix string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(output,
		log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          prefix,
		},
	)
	logger.SetColorProfile(termenv.TrueColor)
	return logger
}

// LogOutput redirects the default logger to w. The returned func restores stderr.
func LogOutput(w io.Writer) func() {
	log.SetOutput(w)
	log.SetColorProfile(termenv.TrueColor)
	return func() { log.SetOutput(os.Stderr) }
}
