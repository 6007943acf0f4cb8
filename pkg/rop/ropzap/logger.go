package ropzap

import (
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvironmentKey selects the production configuration when set to "production".
const EnvironmentKey = "GO_ENVIRONMENT"

func insideContainer() bool {
	return os.Getenv(EnvironmentKey) == "production"
}

// New builds the default logger. It panics when zap cannot be configured.
func New(opts ...zap.Option) *zap.Logger {
	logger, err := Config().Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	return logger
}

// Config returns the configuration New builds from.
func Config() zap.Config {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	return logCfg
}
