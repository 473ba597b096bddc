package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/infrastructure/cache"
	applog "jobmatch/internal/logger"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies and the usecases built on them.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Matching        usecase.MatchingUsecase
	Recommendations usecase.JobRecommendationUsecase
	Interviews      usecase.InterviewFeedbackUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	logger = applog.OrNop(logger)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := migration.NewRunner(nil, logger.Named("migration")).Run(connectCtx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	if cfg.Database.RunSeeders {
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger.Named("seeder")}
		if err := r.Run(connectCtx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	redis := cache.NewRedis(ctx, cfg.Redis, logger.Named("cache"))

	return newContainer(cfg, logger, db, redis), nil
}

func newContainer(cfg config.Config, logger *zap.Logger, db database.DB, redis *cache.Redis) *Container {
	candidates := repository.NewPostgresCandidateRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	interviews := repository.NewPostgresInterviewRepository(db)
	matches := repository.NewPostgresJobMatchRepository(db)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redis,
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),

		Matching: usecase.NewMatchingUsecase(
			candidates, jobs, matches, redis, cfg.Redis.TTL, logger.Named("matching"),
		),
		Recommendations: usecase.NewJobRecommendationUsecase(
			candidates, jobs, applications, redis,
			cfg.Recommendation.CacheTTL, cfg.Recommendation.JobPool, logger.Named("recommendation"),
		),
		Interviews: usecase.NewInterviewFeedbackUsecase(interviews, logger.Named("interview")),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
