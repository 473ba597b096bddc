package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Log            LogConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	AutoMigrate bool
	RunSeeders  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RecommendationConfig struct {
	CacheTTL time.Duration
	JobPool  int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

var defaults = map[string]any{
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_SSL_MODE":              "disable",
	"DB_CONNECT_TIMEOUT":       "5s",
	"DB_AUTO_MIGRATE":          false,
	"DB_RUN_SEEDERS":           false,
	"REDIS_HOST":               "localhost",
	"REDIS_PORT":               "6379",
	"REDIS_DB":                 0,
	"REDIS_TTL":                "10m",
	"JWT_ACCESS_EXPIRES_IN":    "15m",
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               "json",
	"RECOMMENDATION_CACHE_TTL": "5m",
	"RECOMMENDATION_JOB_POOL":  200,
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory. Durations use Go syntax ("5m").
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("DB_HOST"),
		DBPort:                opt("DB_PORT"),
		DBName:                opt("DB_NAME"),
		DBUser:                opt("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBSSLMode:             opt("DB_SSL_MODE"),
		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
		AutoMigrate:           v.GetBool("DB_AUTO_MIGRATE"),
		RunSeeders:            v.GetBool("DB_RUN_SEEDERS"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      v.GetDuration("REDIS_TTL"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: v.GetDuration("JWT_ACCESS_EXPIRES_IN"),
	}

	cfg.Log = LogConfig{
		Level:  strings.ToLower(opt("LOG_LEVEL")),
		Format: strings.ToLower(opt("LOG_FORMAT")),
	}

	cfg.Recommendation = RecommendationConfig{
		CacheTTL: v.GetDuration("RECOMMENDATION_CACHE_TTL"),
		JobPool:  v.GetInt("RECOMMENDATION_JOB_POOL"),
	}
	if cfg.Recommendation.JobPool <= 0 || cfg.Recommendation.JobPool > 200 {
		cfg.Recommendation.JobPool = 200
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
