package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger = logrus.New()

func Init() {
	Logger = logrus.New() // initializing logger
	Logger.SetLevel(levelFromEnv())
}

func levelFromEnv() logrus.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
