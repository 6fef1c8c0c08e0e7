package seed

import (
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

var (
	ErrMissingHero  = errors.New("seed document has no hero section")
	ErrMissingAbout = errors.New("seed document has no about section")
)

// Map converts a seed document to a SiteConfig. Only presence is checked:
// both copy sections exist and every project has a unique, non-empty id.
func Map(doc Document) (domain.SiteConfig, error) {
	if doc.Hero == nil {
		return domain.SiteConfig{}, ErrMissingHero
	}
	if doc.About == nil {
		return domain.SiteConfig{}, ErrMissingAbout
	}

	cfg := domain.SiteConfig{
		Hero: domain.Hero{
			Status:   doc.Hero.Status,
			Title:    doc.Hero.Title,
			Subtitle: doc.Hero.Subtitle,
		},
		About: domain.About{
			Title:        doc.About.Title,
			Description1: doc.About.Description1,
			Description2: doc.About.Description2,
		},
		Projects: make([]domain.Project, 0, len(doc.Projects)),
	}

	for _, p := range doc.Projects {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		cfg.Projects = append(cfg.Projects, domain.Project{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Tags:        tags,
		})
	}

	if err := cfg.Validate(); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("invalid seed document: %w", err)
	}
	return cfg, nil
}

// FromFile loads and maps a seed file in one step.
func FromFile(path string) (domain.SiteConfig, error) {
	doc, err := NewLoader(path).Load()
	if err != nil {
		return domain.SiteConfig{}, err
	}
	return Map(doc)
}
