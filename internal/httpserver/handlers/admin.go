package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/session"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Admin switches the visitor to admin mode and renders whatever the view
// router resolves to: the login form until the gate opens, the editor after.
func Admin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := mw.SessionFrom(r.Context())
		sess.Enter(view.ModeAdmin)

		if raw := r.URL.Query().Get("section"); raw != "" {
			section, err := view.ParseSection(raw)
			if err != nil {
				d.Logger.Debug("ignoring unknown admin section", logger.String("section", raw))
			} else {
				sess.Select(section)
			}
		}

		renderAdmin(w, d, sess.Snapshot(), http.StatusOK, "")
	}
}

func renderAdmin(w http.ResponseWriter, d deps.Deps, snap session.Snapshot, status int, username string) {
	var err error
	switch view.Resolve(snap.View, snap.Authenticated) {
	case view.ScreenEditor:
		err = d.Renderer.Editor(w, status, render.EditorPage{
			Config:  d.Content.Current(),
			Section: snap.View.Section,
		})
	default:
		err = d.Renderer.Login(w, status, render.LoginPage{
			Username: username,
			Error:    snap.Error,
		})
	}
	if err != nil {
		renderFailed(w, d, err)
	}
}

// Login checks the submitted pair against the configured credentials.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sess := mw.SessionFrom(r.Context())
		sess.Enter(view.ModeAdmin)

		username := r.PostForm.Get("username")
		if sess.Login(d.Credentials, username, r.PostForm.Get("password")) {
			d.Logger.Info("admin login", logger.String("remote_ip", r.RemoteAddr))
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		d.Logger.Info("admin login failed", logger.String("remote_ip", r.RemoteAddr))
		snap := sess.Snapshot()
		status := http.StatusUnauthorized
		if snap.Authenticated {
			// A wrong pair does not end an existing admin session.
			status = http.StatusOK
		}
		renderAdmin(w, d, snap, status, username)
	}
}

func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mw.SessionFrom(r.Context()).Logout()
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

// EditHero applies every hero field present in the form, one update each.
func EditHero(d deps.Deps) http.HandlerFunc {
	return editForm(d, view.SectionHero, func(ctx context.Context, r *http.Request, form url.Values) error {
		for _, f := range domain.HeroFields {
			if v, ok := formValue(form, string(f)); ok {
				if err := d.Content.UpdateHero(ctx, f, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func EditAbout(d deps.Deps) http.HandlerFunc {
	return editForm(d, view.SectionAbout, func(ctx context.Context, r *http.Request, form url.Values) error {
		for _, f := range domain.AboutFields {
			if v, ok := formValue(form, string(f)); ok {
				if err := d.Content.UpdateAbout(ctx, f, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// EditProject updates the project named in the URL. An unknown id changes nothing.
func EditProject(d deps.Deps) http.HandlerFunc {
	return editForm(d, view.SectionWork, func(ctx context.Context, r *http.Request, form url.Values) error {
		id := chi.URLParam(r, "id")
		for _, f := range domain.ProjectFields {
			if v, ok := formValue(form, string(f)); ok {
				if err := d.Content.UpdateProject(ctx, id, f, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func editForm(d deps.Deps, section view.Section, apply func(context.Context, *http.Request, url.Values) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if err := apply(r.Context(), r, r.PostForm); err != nil {
			d.Logger.Error("failed to save content",
				logger.String("section", string(section)),
				logger.Error(err))
			http.Error(w, "failed to save changes", http.StatusInternalServerError)
			return
		}

		sess := mw.SessionFrom(r.Context())
		sess.Enter(view.ModeAdmin)
		sess.Select(section)
		http.Redirect(w, r, "/admin?section="+string(section), http.StatusSeeOther)
	}
}

func formValue(form url.Values, key string) (string, bool) {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
