package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/store"
	"github.com/MrSnakeDoc/folio/internal/store/memory"
)

func TestRoundTrip(t *testing.T) {
	docs := map[string]domain.SiteConfig{
		"default": domain.DefaultSiteConfig(),
		"empty copy": {
			Projects: []domain.Project{{ID: "only", Tags: []string{}}},
		},
		"reordered projects": func() domain.SiteConfig {
			d := domain.DefaultSiteConfig()
			d.Projects[0], d.Projects[2] = d.Projects[2], d.Projects[0]
			return d
		}(),
		"unicode": func() domain.SiteConfig {
			d := domain.DefaultSiteConfig()
			d.Hero.Title = "Héllo — 世界 \"quoted\" <b>"
			return d
		}(),
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			p := NewPersistence(memory.New())
			if err := p.Save(context.Background(), doc); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := p.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(doc, got); diff != "" {
				t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
			}
		})
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	doc := domain.DefaultSiteConfig()

	once := memory.New()
	if err := NewPersistence(once).Save(ctx, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	twice := memory.New()
	p := NewPersistence(twice)
	for i := 0; i < 2; i++ {
		if err := p.Save(ctx, doc); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	a, _ := once.Get(ctx, store.DocumentKey)
	b, _ := twice.Get(ctx, store.DocumentKey)
	if string(a) != string(b) {
		t.Errorf("saving twice stored %q, saving once stored %q", b, a)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := NewPersistence(memory.New()).Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() on empty backend error = %v, want ErrNotFound", err)
	}

	b := memory.New()
	_ = b.Put(ctx, store.DocumentKey, []byte("<html>"))
	if _, err := NewPersistence(b).Load(ctx); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load() on garbage error = %v, want ErrCorrupt", err)
	}
}

func TestLoadRejectsNonDocumentJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"null", "null"},
		{"empty object", "{}"},
		{"unrelated object", `{"unrelated":true}`},
		{"missing projects", `{"hero":{},"about":{}}`},
		{"null about", `{"hero":{},"about":null,"projects":[]}`},
		{"duplicate ids", `{"hero":{},"about":{},"projects":[{"id":"a"},{"id":"a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			b := memory.New()
			_ = b.Put(ctx, store.DocumentKey, []byte(tt.raw))
			if _, err := NewPersistence(b).Load(ctx); !errors.Is(err, ErrCorrupt) {
				t.Errorf("Load(%s) error = %v, want ErrCorrupt", tt.raw, err)
			}
		})
	}

	// Empty copy and no projects is still a document.
	ctx := context.Background()
	b := memory.New()
	_ = b.Put(ctx, store.DocumentKey, []byte(`{"hero":{},"about":{},"projects":[]}`))
	doc, err := NewPersistence(b).Load(ctx)
	if err != nil {
		t.Fatalf("Load() on minimal document error = %v", err)
	}
	if len(doc.Projects) != 0 || doc.Hero.Title != "" {
		t.Errorf("Load() = %+v, want the empty document as stored", doc)
	}
}

func TestPersistedFieldNames(t *testing.T) {
	ctx := context.Background()
	b := memory.New()
	if err := NewPersistence(b).Save(ctx, domain.SiteConfig{
		Projects: []domain.Project{{ID: "1", ImageURL: "u"}},
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, _ := b.Get(ctx, store.DocumentKey)
	want := `{"hero":{"status":"","title":"","subtitle":""},"about":{"title":"","description1":"","description2":""},"projects":[{"id":"1","title":"","category":"","description":"","imageUrl":"u","tags":null}]}`
	if string(raw) != want {
		t.Errorf("stored document =\n%s\nwant\n%s", raw, want)
	}
}
