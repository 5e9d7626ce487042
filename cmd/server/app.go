package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openhire/jobboard-api/internal/api"
	apimiddleware "github.com/openhire/jobboard-api/internal/api/middleware"
	"github.com/openhire/jobboard-api/internal/config"
	"github.com/openhire/jobboard-api/internal/platform/postgres"
	"github.com/openhire/jobboard-api/internal/platform/uploads"
	"github.com/openhire/jobboard-api/internal/service"
	"github.com/openhire/jobboard-api/internal/service/auth"
)

// Rate limit applied to the credential endpoints (register, login).
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// application wires the stores, services, handlers, and middleware together.
type application struct {
	cfg    *config.Config
	logger *slog.Logger

	authHandler    *api.AuthHandler
	jobHandler     *api.JobHandler
	companyHandler *api.CompanyHandler
	cvHandler      *api.CVHandler

	authMiddleware *apimiddleware.AuthMiddleware
	rateLimiter    apimiddleware.RateLimiter
}

// newApplication builds the dependency graph from configuration and the
// opened database pool.
func newApplication(cfg *config.Config, db *sql.DB, log *slog.Logger) (*application, error) {
	companyStore := postgres.NewCompanyStore(db, log)
	jobStore := postgres.NewJobStore(db, log)
	cvStore := postgres.NewCVStore(db, log)
	cityStore := postgres.NewCityStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	authService := service.NewAuthService(
		companyStore,
		auth.NewBcryptHasher(cfg.Auth.BCryptCost),
		auth.NewBcryptVerifier(),
		jwtService,
		log,
	)
	jobService := service.NewJobService(jobStore, cfg.Pagination.JobPageSize, log)
	publicService := service.NewPublicService(
		companyStore, jobStore, cityStore, cfg.Pagination.CompanyListLimit, log)
	cvService := service.NewCVService(cvStore, jobStore, log)

	saver, err := uploads.NewDiskSaver(cfg.Uploads.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload saver: %w", err)
	}

	cookieLifetime := time.Duration(cfg.Auth.TokenLifetimeMinutes) * time.Minute

	app := &application{
		cfg:    cfg,
		logger: log,
		authHandler: api.NewAuthHandler(
			authService, saver, cookieLifetime, cfg.Server.IsProduction(), log),
		jobHandler:     api.NewJobHandler(jobService, saver, log),
		companyHandler: api.NewCompanyHandler(publicService, log),
		cvHandler:      api.NewCVHandler(cvService, log),
		authMiddleware: apimiddleware.NewAuthMiddleware(authService, log),
		rateLimiter:    newRateLimiter(cfg.Redis, log),
	}
	return app, nil
}

// newRateLimiter picks the Redis-backed limiter when Redis is configured,
// so the limit holds across replicas, and falls back to in-memory otherwise.
func newRateLimiter(cfg config.RedisConfig, log *slog.Logger) apimiddleware.RateLimiter {
	if cfg.URL == "" {
		return apimiddleware.NewMemoryRateLimiter(authRateLimit, authRateWindow)
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Warn("invalid redis url, using in-memory rate limiter",
			slog.String("error", err.Error()))
		return apimiddleware.NewMemoryRateLimiter(authRateLimit, authRateWindow)
	}

	client := redis.NewClient(opts)
	return apimiddleware.NewRedisRateLimiter(client, authRateLimit, authRateWindow, "auth", log)
}
