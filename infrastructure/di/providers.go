package di

import (
	"fmt"

	"presidia-backend/application/ports"
	"presidia-backend/application/queries"
	querybus "presidia-backend/application/queries/bus"
	queries_handlers "presidia-backend/application/queries/handlers"
	"presidia-backend/infrastructure/config"
	"presidia-backend/infrastructure/persistence/postgres"
	"presidia-backend/infrastructure/persistence/sqlite"
	"presidia-backend/pkg/auth"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideStore opens the persistence adapter selected by configuration.
// DATABASE_URL set means Postgres; otherwise the embedded SQLite file.
// The choice is made once here; nothing downstream branches on it.
func ProvideStore(cfg *config.Config, logger *zap.Logger) (ports.Store, error) {
	if cfg.UsePostgres() {
		store, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		logger.Info("Using Postgres store")
		return store, nil
	}

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	logger.Info("Using SQLite store", zap.String("path", cfg.SQLitePath))
	return store, nil
}

// ProvideJWTValidator creates the bearer token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      []string{"presidia-api"},
	})
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() querybus.Cache {
	return NewInMemoryCache()
}

// ProvideQueryBus creates a query bus with registered handlers. Every
// handler is wrapped with the caching middleware; the queries are pure
// reads over seeded data, so short-TTL caching is always safe.
func ProvideQueryBus(
	store ports.Store,
	cache querybus.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetBriefingQuery{}, queries_handlers.NewGetBriefingHandler(store, logger)},
		{queries.ListBriefingsQuery{}, queries_handlers.NewListBriefingsHandler(store, logger)},
		{queries.GetMeetingQuery{}, queries_handlers.NewGetMeetingHandler(store, logger)},
		{queries.GetContactQuery{}, queries_handlers.NewGetContactHandler(store, logger)},
		{queries.GetOrganizationQuery{}, queries_handlers.NewGetOrganizationHandler(store, logger)},
	}
	for _, reg := range registrations {
		if err := queryBus.Register(reg.query, caching.Wrap(reg.handler)); err != nil {
			return nil, fmt.Errorf("register %T: %w", reg.query, err)
		}
	}

	return queryBus, nil
}
