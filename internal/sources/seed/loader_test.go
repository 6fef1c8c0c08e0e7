package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `
hero:
  status: Booked until spring
  title: Hello
  subtitle: I build things.
about:
  title: About me
  description1: One
  description2: Two
projects:
  - id: a
    title: Alpha
    category: Web
    description: First
    imageUrl: https://example.com/a.png
    tags: [Go, HTMX]
`)

	doc, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Hero == nil || doc.Hero.Status != "Booked until spring" {
		t.Errorf("hero = %+v", doc.Hero)
	}
	if len(doc.Projects) != 1 || doc.Projects[0].ImageURL != "https://example.com/a.png" {
		t.Errorf("projects = %+v", doc.Projects)
	}
}

func TestLoaderRejectsUnknownKeys(t *testing.T) {
	path := writeSeed(t, `
hero: {status: s, title: t, subtitle: u}
about: {title: a, description1: b, description2: c}
projects:
  - id: "1"
    imageURL: wrong-case
`)

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() should reject unknown field imageURL")
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/path/seed.yaml").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}
