package app

import (
	"fmt"

	"jobmatch/internal/config"
	"jobmatch/internal/logger"

	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment)), nil
}
