package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/GlebRadaev/ofgateway/internal/config"
	"github.com/rs/zerolog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

var zerologLvlMap = map[string]zerolog.Level{
	"info":  zerolog.InfoLevel,
	"error": zerolog.ErrorLevel,
	"debug": zerolog.DebugLevel,
}

// InitLogger replaces the global zap logger used by the gateway.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         "console",
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named("ofgateway"))

	return nil
}

// NewConsoleLogger builds the zerolog logger used by the mock OnlyFans API.
func NewConsoleLogger(lvlName string) (zerolog.Logger, error) {
	lvl, ok := zerologLvlMap[lvlName]
	if !ok {
		return zerolog.Nop(), fmt.Errorf("unsupported log lvl: %s", lvlName)
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("logger", "mockapi").Logger(), nil
}
