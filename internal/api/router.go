package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/notehub/notehub/internal/api/handler"
	"github.com/notehub/notehub/internal/api/middleware"
	"github.com/notehub/notehub/internal/auth"
	"github.com/notehub/notehub/internal/note"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	AuthService *auth.Service
	NoteRepo    note.Repository
	DBPinger    handler.DBPinger
	Version     string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
// The auth endpoints are public; every note endpoint sits behind the bearer
// token middleware.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.SignIn)
		r.Post("/register", authHandler.Register)
		r.Post("/token/google", authHandler.SignInGoogle)
		r.Post("/register/google", authHandler.RegisterGoogle)
	})

	noteHandler := handler.NewNoteHandler(deps.NoteRepo)
	r.Route("/note", func(r chi.Router) {
		r.Use(middleware.Auth(deps.AuthService))
		r.Get("/", noteHandler.List)
		r.Post("/", noteHandler.Create)
		r.Get("/{id}", noteHandler.Get)
		r.Put("/{id}", noteHandler.Update)
		r.Delete("/{id}", noteHandler.Delete)
	})

	return r
}
