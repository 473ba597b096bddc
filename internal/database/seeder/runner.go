package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
	applog "jobmatch/internal/logger"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := applog.OrNop(r.Logger)
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder applied", zap.String("seeder", s.Name()))
	}
	return nil
}
