package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/session"
	"github.com/MrSnakeDoc/folio/internal/store"
	"github.com/MrSnakeDoc/folio/internal/store/memory"
)

// downBackend loaded once but can no longer be reached.
type downBackend struct{ *memory.Backend }

func (downBackend) Ping(context.Context) error { return errors.New("connection refused") }

func (downBackend) Put(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func newDeps(t *testing.T, b store.Backend) deps.Deps {
	t.Helper()
	p := content.NewPersistence(b)
	st, err := content.Open(context.Background(), p, domain.DefaultSiteConfig(), logger.NewNop())
	if err != nil {
		t.Fatalf("content.Open() error = %v", err)
	}
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}
	return deps.Deps{
		Logger:      logger.NewNop(),
		StartTime:   time.Now(),
		TimeNow:     time.Now,
		Content:     st,
		Persistence: p,
		Renderer:    r,
		Sessions:    session.NewRegistry(),
		Credentials: session.DefaultCredentials,
	}
}

// adminRequest returns a request carrying an authenticated session.
func adminRequest(t *testing.T, d deps.Deps, method, target string, body string) *http.Request {
	t.Helper()
	sess := d.Sessions.Create()
	if !sess.Login(d.Credentials, "admin", "admin") {
		t.Fatal("login with default credentials failed")
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(mw.WithSession(req.Context(), sess))
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name    string
		backend store.Backend
		status  int
		body    string
	}{
		{"backend up", memory.New(), http.StatusOK, `"ready":true`},
		{"backend down", downBackend{memory.New()}, http.StatusServiceUnavailable, `"ready":false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t, tt.backend)
			rec := httptest.NewRecorder()
			Readyz(d)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestHealthzReportsSessions(t *testing.T) {
	d := newDeps(t, memory.New())
	d.Sessions.Create()
	d.Sessions.Create()

	rec := httptest.NewRecorder()
	Healthz(d)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !strings.Contains(rec.Body.String(), `"sessions":2`) {
		t.Errorf("body = %q, want sessions=2", rec.Body.String())
	}
}

func TestEditFormSaveFailure(t *testing.T) {
	d := newDeps(t, downBackend{memory.New()})
	before := d.Content.Current()

	form := url.Values{"title": {"Lost"}}
	req := adminRequest(t, d, http.MethodPost, "/admin/hero", form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	EditHero(d)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if d.Content.Current().Hero.Title != before.Hero.Title {
		t.Error("a failed save must not change the served document")
	}
}

func TestPatchSaveFailure(t *testing.T) {
	d := newDeps(t, downBackend{memory.New()})

	req := adminRequest(t, d, http.MethodPatch, "/api/admin/about", `{"field":"title","value":"x"}`)
	rec := httptest.NewRecorder()
	PatchAbout(d)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestEditProjectAppliesEveryField(t *testing.T) {
	b := memory.New()
	d := newDeps(t, b)

	form := url.Values{
		"title":       {"New title"},
		"category":    {"New category"},
		"description": {"New description"},
		"imageUrl":    {"https://example.com/p.png"},
		"tags":        {"ignored"},
	}
	req := adminRequest(t, d, http.MethodPost, "/admin/projects/1", form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// chi fills URL params through its route context.
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	EditProject(d)(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	got := d.Content.Current().Projects[0]
	want := domain.Project{
		ID:          "1",
		Title:       "New title",
		Category:    "New category",
		Description: "New description",
		ImageURL:    "https://example.com/p.png",
		Tags:        domain.DefaultSiteConfig().Projects[0].Tags,
	}
	if got.Title != want.Title || got.Category != want.Category ||
		got.Description != want.Description || got.ImageURL != want.ImageURL {
		t.Errorf("project = %+v, want %+v", got, want)
	}
	if strings.Join(got.Tags, ",") != strings.Join(want.Tags, ",") {
		t.Errorf("tags changed to %v", got.Tags)
	}
	if b.Puts() != 4 {
		t.Errorf("Puts() = %d, want one per field (4)", b.Puts())
	}
}
