package domain

import (
	"errors"
	"fmt"
)

// SiteConfig is the editable content of the site.
//
// It is the unit of persistence: the whole document is written under a
// single key on every change, never a partial patch.
type SiteConfig struct {
	Hero     Hero      `json:"hero" yaml:"hero"`
	About    About     `json:"about" yaml:"about"`
	Projects []Project `json:"projects" yaml:"projects"`
}

// Hero is the short promotional copy at the top of the page.
type Hero struct {
	Status   string `json:"status" yaml:"status"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// About is the biography copy.
type About struct {
	Title        string `json:"title" yaml:"title"`
	Description1 string `json:"description1" yaml:"description1"`
	Description2 string `json:"description2" yaml:"description2"`
}

// Project is one portfolio item.
//
// ID is assigned once (seed data) and never regenerated. Slice order of
// SiteConfig.Projects is display order.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	ImageURL    string   `json:"imageUrl" yaml:"imageUrl"`
	Tags        []string `json:"tags" yaml:"tags"`
}

var (
	ErrMissingProjectID   = errors.New("project id is empty")
	ErrDuplicateProjectID = errors.New("duplicate project id")
)

// Clone returns a deep copy of the document.
func (c SiteConfig) Clone() SiteConfig {
	out := SiteConfig{
		Hero:  c.Hero,
		About: c.About,
	}
	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			out.Projects[i] = p.clone()
		}
	}
	return out
}

func (p Project) clone() Project {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// ProjectIndex returns the position of the project with the given id, or -1.
func (c SiteConfig) ProjectIndex(id string) int {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate checks field presence only: every project carries a non-empty,
// unique id. Copy fields are free text and may be empty.
func (c SiteConfig) Validate() error {
	seen := make(map[string]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("projects[%d]: %w", i, ErrMissingProjectID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("projects[%d] %q: %w", i, p.ID, ErrDuplicateProjectID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
