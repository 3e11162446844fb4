// Package logging configures the process logger. The TUI owns the
// terminal, so log output goes to a file.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a JSON logger writing to the given file. If the file cannot
// be opened the logger is muted rather than writing over the UI.
func New(path string, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
