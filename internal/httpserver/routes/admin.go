package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

// registerAdmin mounts the editor pages and the JSON edit API. Both share
// one limiter so a client cannot double its budget by switching surface.
func registerAdmin(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.LoginBurst,
		RefillPerMin: d.LoginRefillPerMn,
		MaxEntries:   10_000,
		TrustProxy:   d.TrustProxy,
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger), limit)

		r.Get("/admin", handlers.Admin(d))
		r.Post("/admin/login", handlers.Login(d))
		r.Post("/admin/logout", handlers.Logout(d))

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin(false))
			r.Post("/admin/hero", handlers.EditHero(d))
			r.Post("/admin/about", handlers.EditAbout(d))
			r.Post("/admin/projects/{id}", handlers.EditProject(d))
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(mw.RequireAdmin(true))
			r.Patch("/hero", handlers.PatchHero(d))
			r.Patch("/about", handlers.PatchAbout(d))
			r.Patch("/projects/{id}", handlers.PatchProject(d))
		})
	})
}
