package utils

import (
	"fmdverse/api/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(cfg *models.Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if cfg.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
