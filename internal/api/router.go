package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drydock-dev/drydock/internal/api/handler"
	"github.com/drydock-dev/drydock/internal/api/middleware"
	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/services/auth"
	"github.com/drydock-dev/drydock/internal/services/registry"
	"github.com/drydock-dev/drydock/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	RegistryService *registry.Service
	Storage         storage.Storage
}

// resourceRoutes maps URL paths to registry kinds, in route order
var resourceRoutes = []struct {
	path string
	kind model.ResourceKind
}{
	{"/apps", model.KindApp},
	{"/storage", model.KindBucket},
	{"/databases", model.KindDatabase},
	{"/static-sites", model.KindStaticSite},
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService, cfg.Storage)
	resourceHandler := handler.NewResourceHandler(cfg.RegistryService)

	// Common middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	authGate := middleware.Auth(cfg.AuthService)
	protected := func(h http.HandlerFunc) http.Handler {
		return authGate(h)
	}

	// Open routes
	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)

	// Protected user routes
	r.Handle("/users", protected(userHandler.List)).Methods(http.MethodGet)
	r.Handle("/users", protected(userHandler.Register)).Methods(http.MethodPost)
	r.Handle("/users/{id}", protected(userHandler.Delete)).Methods(http.MethodDelete)

	// Protected resource registries
	for _, rr := range resourceRoutes {
		r.Handle(rr.path, protected(resourceHandler.List(rr.kind))).Methods(http.MethodGet)
		r.Handle(rr.path, protected(resourceHandler.Create(rr.kind))).Methods(http.MethodPost)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
