package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
)

func init() { Register(registerSite) }

func registerSite(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Site(d))
	r.Post("/contact", handlers.Contact(d))
	r.Get("/api/config", handlers.Config(d))
}
