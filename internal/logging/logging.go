// Package logging provides the shared logger used by the library.
//
// Packages derive their own entry with
// logging.DefaultLogger.WithField(logging.LogSubsys, "...") so lenient-mode
// parse warnings can be filtered per subsystem.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogSubsys is the field key identifying the originating subsystem.
const LogSubsys = "subsys"

// DefaultLogger is the logger all library packages write to. Applications
// embedding the library may reconfigure it (level, formatter, output) before
// or after parsing; the library only emits warnings on it.
var DefaultLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// SetOutput redirects all library logging to w.
func SetOutput(w io.Writer) {
	DefaultLogger.SetOutput(w)
}

// SetLevel adjusts the verbosity of library logging.
func SetLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}
