package di

import (
	"presidia-backend/application/ports"
	querybus "presidia-backend/application/queries/bus"
	"presidia-backend/infrastructure/config"
	"presidia-backend/pkg/auth"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        ports.Store
	QueryBus     *querybus.QueryBus
	JWTValidator *auth.JWTValidator
	Cache        querybus.Cache
}
