package domain

import (
	"errors"
	"testing"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{"hero status", func(s string) error { _, err := ParseHeroField(s); return err }, "status", false},
		{"hero unknown", func(s string) error { _, err := ParseHeroField(s); return err }, "description1", true},
		{"about description2", func(s string) error { _, err := ParseAboutField(s); return err }, "description2", false},
		{"about unknown", func(s string) error { _, err := ParseAboutField(s); return err }, "status", true},
		{"project imageUrl", func(s string) error { _, err := ParseProjectField(s); return err }, "imageUrl", false},
		{"project id not editable", func(s string) error { _, err := ParseProjectField(s); return err }, "id", true},
		{"project tags not editable", func(s string) error { _, err := ParseProjectField(s); return err }, "tags", true},
		{"case sensitive", func(s string) error { _, err := ParseProjectField(s); return err }, "ImageURL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownField) {
					t.Errorf("parse(%q) error = %v, want ErrUnknownField", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("parse(%q) unexpected error = %v", tt.input, err)
			}
		})
	}
}

func TestHeroWithChangesOnlyOneField(t *testing.T) {
	base := DefaultSiteConfig().Hero

	for _, f := range HeroFields {
		t.Run(string(f), func(t *testing.T) {
			got, err := base.With(f, "")
			if err != nil {
				t.Fatalf("With(%s) error = %v", f, err)
			}
			if got.Get(f) != "" {
				t.Errorf("With(%s) value = %q, want empty", f, got.Get(f))
			}
			for _, other := range HeroFields {
				if other != f && got.Get(other) != base.Get(other) {
					t.Errorf("With(%s) changed %s", f, other)
				}
			}
		})
	}
}

func TestAboutWithChangesOnlyOneField(t *testing.T) {
	base := DefaultSiteConfig().About

	for _, f := range AboutFields {
		t.Run(string(f), func(t *testing.T) {
			got, err := base.With(f, "new copy")
			if err != nil {
				t.Fatalf("With(%s) error = %v", f, err)
			}
			if got.Get(f) != "new copy" {
				t.Errorf("With(%s) value = %q, want %q", f, got.Get(f), "new copy")
			}
			for _, other := range AboutFields {
				if other != f && got.Get(other) != base.Get(other) {
					t.Errorf("With(%s) changed %s", f, other)
				}
			}
		})
	}
}

func TestProjectWithDoesNotShareTags(t *testing.T) {
	base := DefaultSiteConfig().Projects[0]

	got, err := base.With(ProjectImageURL, "https://example.com/a.png")
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if got.ImageURL != "https://example.com/a.png" {
		t.Errorf("ImageURL = %q", got.ImageURL)
	}
	if got.ID != base.ID || got.Title != base.Title {
		t.Error("With() changed fields other than imageUrl")
	}

	got.Tags[0] = "changed"
	if base.Tags[0] == "changed" {
		t.Error("With() returned a project sharing tags with the original")
	}
}

func TestWithUnknownField(t *testing.T) {
	if _, err := (Hero{}).With("nope", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Hero.With() error = %v, want ErrUnknownField", err)
	}
	if _, err := (About{}).With("nope", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("About.With() error = %v, want ErrUnknownField", err)
	}
	if _, err := (Project{}).With("id", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Project.With() error = %v, want ErrUnknownField", err)
	}
}
