package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name does not name an editable field.
var ErrUnknownField = errors.New("unknown field")

type HeroField string

const (
	HeroStatus   HeroField = "status"
	HeroTitle    HeroField = "title"
	HeroSubtitle HeroField = "subtitle"
)

// HeroFields lists editable hero fields in form order.
var HeroFields = []HeroField{HeroStatus, HeroTitle, HeroSubtitle}

func ParseHeroField(s string) (HeroField, error) {
	for _, f := range HeroFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("hero %q: %w", s, ErrUnknownField)
}

// Get returns the current value of f.
func (h Hero) Get(f HeroField) string {
	switch f {
	case HeroStatus:
		return h.Status
	case HeroTitle:
		return h.Title
	case HeroSubtitle:
		return h.Subtitle
	}
	return ""
}

// With returns a copy of h with f set to value.
func (h Hero) With(f HeroField, value string) (Hero, error) {
	switch f {
	case HeroStatus:
		h.Status = value
	case HeroTitle:
		h.Title = value
	case HeroSubtitle:
		h.Subtitle = value
	default:
		return h, fmt.Errorf("hero %q: %w", f, ErrUnknownField)
	}
	return h, nil
}

type AboutField string

const (
	AboutTitle        AboutField = "title"
	AboutDescription1 AboutField = "description1"
	AboutDescription2 AboutField = "description2"
)

var AboutFields = []AboutField{AboutTitle, AboutDescription1, AboutDescription2}

func ParseAboutField(s string) (AboutField, error) {
	for _, f := range AboutFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("about %q: %w", s, ErrUnknownField)
}

func (a About) Get(f AboutField) string {
	switch f {
	case AboutTitle:
		return a.Title
	case AboutDescription1:
		return a.Description1
	case AboutDescription2:
		return a.Description2
	}
	return ""
}

func (a About) With(f AboutField, value string) (About, error) {
	switch f {
	case AboutTitle:
		a.Title = value
	case AboutDescription1:
		a.Description1 = value
	case AboutDescription2:
		a.Description2 = value
	default:
		return a, fmt.Errorf("about %q: %w", f, ErrUnknownField)
	}
	return a, nil
}

// ProjectField names a project field the admin editor may change.
// id and tags are not editable.
type ProjectField string

const (
	ProjectTitle       ProjectField = "title"
	ProjectCategory    ProjectField = "category"
	ProjectDescription ProjectField = "description"
	ProjectImageURL    ProjectField = "imageUrl"
)

var ProjectFields = []ProjectField{ProjectTitle, ProjectCategory, ProjectDescription, ProjectImageURL}

func ParseProjectField(s string) (ProjectField, error) {
	for _, f := range ProjectFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("project %q: %w", s, ErrUnknownField)
}

func (p Project) Get(f ProjectField) string {
	switch f {
	case ProjectTitle:
		return p.Title
	case ProjectCategory:
		return p.Category
	case ProjectDescription:
		return p.Description
	case ProjectImageURL:
		return p.ImageURL
	}
	return ""
}

// With returns a copy of p with f set to value. Tags are copied, not shared.
func (p Project) With(f ProjectField, value string) (Project, error) {
	p = p.clone()
	switch f {
	case ProjectTitle:
		p.Title = value
	case ProjectCategory:
		p.Category = value
	case ProjectDescription:
		p.Description = value
	case ProjectImageURL:
		p.ImageURL = value
	default:
		return p, fmt.Errorf("project %q: %w", f, ErrUnknownField)
	}
	return p, nil
}
