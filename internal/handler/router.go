package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterConfig holds what NewRouter mounts.
type RouterConfig struct {
	Generator *service.GeneratorService
	History   *service.HistoryService
	Auth      *service.AuthService
	JWTSecret string
	// RateLimit guards login and generation. Nil disables limiting.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter builds the API routes. History routes always sit behind
// middleware.RequireAuth, so they answer 503 when no admin password is set.
func NewRouter(cfg RouterConfig) http.Handler {
	gen := NewGeneratorHandler(cfg.Generator)
	hist := NewHistoryHandler(cfg.History)
	auth := NewAuthHandler(cfg.Auth)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimit != nil {
			r.Use(cfg.RateLimit)
		}
		r.Post("/api/v1/auth/login", auth.HandleLogin)
		r.Post("/api/v1/generate", gen.HandleGenerate)
		r.Post("/api/v1/generate/batch", gen.HandleBatch)
	})

	r.Post("/api/v1/strength", gen.HandleStrength)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.Auth.Enabled(), cfg.JWTSecret))
		r.Get("/api/v1/history", hist.HandleList)
		r.Delete("/api/v1/history", hist.HandleClear)
		r.Get("/api/v1/history/export", hist.HandleExport)
		r.Put("/api/v1/history/{id}/notes", hist.HandleUpdateNotes)
		r.Delete("/api/v1/history/{id}", hist.HandleDelete)
	})

	return r
}
