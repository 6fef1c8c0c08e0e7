package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Site renders the public portfolio and switches the visitor back to public mode.
func Site(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess := mw.SessionFrom(r.Context()); sess != nil {
			sess.Enter(view.ModePublic)
		}
		page := render.SitePage{
			Config:      d.Content.Current(),
			ContactSent: r.URL.Query().Get("sent") == "1",
			Year:        year(d),
		}
		if err := d.Renderer.Site(w, http.StatusOK, page); err != nil {
			renderFailed(w, d, err)
		}
	}
}

// Contact accepts the public contact form. Messages are logged, not stored.
func Contact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		msg := domain.ContactMessage{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Subject: r.PostForm.Get("subject"),
			Message: r.PostForm.Get("message"),
		}

		if err := msg.Validate(); err != nil {
			page := render.SitePage{
				Config:       d.Content.Current(),
				Contact:      msg,
				ContactError: "Please fill in every field.",
				Year:         year(d),
			}
			if err := d.Renderer.Site(w, http.StatusBadRequest, page); err != nil {
				renderFailed(w, d, err)
			}
			return
		}

		d.Logger.Info("contact message received",
			logger.String("name", msg.Name),
			logger.String("email", msg.Email),
			logger.String("subject", msg.Subject),
			logger.Int("message_length", len(msg.Message)))

		http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
	}
}

func year(d deps.Deps) int {
	if d.TimeNow != nil {
		return d.TimeNow().Year()
	}
	return time.Now().Year()
}

func renderFailed(w http.ResponseWriter, d deps.Deps, err error) {
	d.Logger.Error("failed to render page", logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
