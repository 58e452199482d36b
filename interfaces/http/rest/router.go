package rest

import (
	"net/http"

	"presidia-backend/application/ports"
	querybus "presidia-backend/application/queries/bus"
	"presidia-backend/interfaces/http/rest/handlers"
	"presidia-backend/interfaces/http/rest/middleware"
	"presidia-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	queryBus  *querybus.QueryBus
	store     ports.Store
	validator *auth.JWTValidator
	logger    *zap.Logger

	enableCORS bool
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	store ports.Store,
	validator *auth.JWTValidator,
	logger *zap.Logger,
	enableCORS bool,
) *Router {
	return &Router{
		queryBus:   queryBus,
		store:      store,
		validator:  validator,
		logger:     logger,
		enableCORS: enableCORS,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.presidia.app"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		briefingHandler := handlers.NewBriefingHandler(rt.queryBus, rt.logger)
		r.Route("/briefings", func(r chi.Router) {
			r.Get("/", briefingHandler.ListBriefings)
			r.Get("/{briefingID}", briefingHandler.GetBriefing)
		})

		meetingHandler := handlers.NewMeetingHandler(rt.queryBus, rt.logger)
		r.Get("/meetings/{meetingID}", meetingHandler.GetMeeting)

		contactHandler := handlers.NewContactHandler(rt.queryBus, rt.logger)
		r.Get("/contacts/{contactID}", contactHandler.GetContact)

		organizationHandler := handlers.NewOrganizationHandler(rt.queryBus, rt.logger)
		r.Get("/organizations/{orgID}", organizationHandler.GetOrganization)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests. Ready means the store
// answers a ping.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := rt.store.Ping(req.Context()); err != nil {
		rt.logger.Warn("Readiness check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
