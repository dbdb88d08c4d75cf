package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the application logger: JSON output everywhere except
// development, where a colored text formatter is friendlier.
func New(level, environment string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(ParseLevel(level))

	if strings.ToLower(environment) == "development" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	return logger
}

// ParseLevel converts a config string to a logrus level, defaulting to
// info on anything unrecognized.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
