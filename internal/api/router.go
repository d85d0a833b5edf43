package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/teamform/teamform/internal/api/handler"
	"github.com/teamform/teamform/internal/api/middleware"
	"github.com/teamform/teamform/internal/formation"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Version           string
	Engine            *formation.Engine
	AllowedExtensions []string
	MaxUploadBytes    int64
	RandSource        handler.RandSource
	OpenAPI           *handler.OpenAPIHandler
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if deps.OpenAPI != nil {
		r.Get("/openapi.json", deps.OpenAPI.ServeHTTP)
	}

	if deps.Engine != nil {
		randSource := deps.RandSource
		if randSource == nil {
			randSource = handler.NewRandSource(0)
		}
		assignHandler := handler.NewAssignHandler(deps.Engine, deps.AllowedExtensions, deps.MaxUploadBytes, randSource)
		r.Post("/api/student-projects/assign", assignHandler.ServeHTTP)
	}

	return r
}
