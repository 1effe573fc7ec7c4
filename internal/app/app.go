package app

import (
	"context"
	"fmt"
	"log"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/database"
	"jobboard-api/internal/security"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/storage/postgres"
	"jobboard-api/internal/storage/redisstore"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	Store       storage.Store
	RateLimiter storage.RateLimiter

	UserService        services.UserService
	ProfileService     services.ProfileService
	CategoryService    services.CategoryService
	JobService         services.JobService
	ApplicationService services.ApplicationService
	CompanyService     services.CompanyService
	LocationService    services.LocationService
}

// New connects to Postgres and Redis and wires every service.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store := postgres.NewStore(dbPool)
	tokens := redisstore.NewTokenStore(redisClient)
	jwtManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	return &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   handlers.NewValidator(),

		Store:       store,
		RateLimiter: redisstore.NewRateLimiter(redisClient, "ratelimit"),

		UserService:        services.NewUserService(store, tokens, jwtManager),
		ProfileService:     services.NewProfileService(store),
		CategoryService:    services.NewCategoryService(store),
		JobService:         services.NewJobService(store),
		ApplicationService: services.NewApplicationService(store),
		CompanyService:     services.NewCompanyService(store),
		LocationService:    services.NewLocationService(store),
	}, nil
}

// HealthChecks exposes the backing stores to the health endpoint.
func (a *Application) HealthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{}
	if a.DBPool != nil {
		checks["database"] = a.DBPool.Ping
	}
	if a.RedisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.RedisClient.Ping(ctx).Err()
		}
	}
	return checks
}

func (a *Application) Close() {
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
