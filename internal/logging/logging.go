package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the process logger: JSON to stdout at info level.
func SetupLogging() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	return logger
}
