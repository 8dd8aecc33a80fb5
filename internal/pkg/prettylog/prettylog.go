// Package prettylog builds the process logger: readable console output in
// development, JSON in production.
package prettylog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ShouldColor returns true when terminal colors should be enabled.
func ShouldColor() bool {
	return os.Getenv("NO_COLOR") == ""
}

// NewZapLogger creates the application logger for the given environment.
func NewZapLogger(dev bool) (*zap.Logger, error) {
	if !dev {
		return zap.NewProduction()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if ShouldColor() {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		zapcore.DebugLevel,
	)
	return zap.New(core), nil
}
