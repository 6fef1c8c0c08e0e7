// Package content holds the site document in memory and keeps the stored
// copy in lockstep with it: every committed update has already been persisted.
package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

// Store is the single source of truth for editable site content.
type Store struct {
	mu      sync.RWMutex
	doc     domain.SiteConfig
	persist *Persistence
	logger  logger.Logger
}

// Open loads the persisted document. A missing or corrupt value is replaced
// by fallback as a whole; there is no field-level merge. Other read errors
// (backend unreachable) are returned.
func Open(ctx context.Context, p *Persistence, fallback domain.SiteConfig, log logger.Logger) (*Store, error) {
	doc, err := p.Load(ctx)
	switch {
	case err == nil:
		log.Info("loaded persisted document",
			logger.Int("projects", len(doc.Projects)))
	case errors.Is(err, ErrNotFound):
		log.Info("no persisted document, using default")
		doc = fallback.Clone()
	case errors.Is(err, ErrCorrupt):
		log.Warn("persisted document unreadable, using default", logger.Error(err))
		doc = fallback.Clone()
	default:
		return nil, err
	}

	return &Store{
		doc:     doc,
		persist: p,
		logger:  log,
	}, nil
}

// Current returns a copy of the document. Callers may not mutate the store
// through it.
func (s *Store) Current() domain.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// UpdateHero replaces one hero field. Empty values are accepted.
func (s *Store) UpdateHero(ctx context.Context, field domain.HeroField, value string) error {
	return s.update(ctx, func(doc *domain.SiteConfig) (bool, error) {
		hero, err := doc.Hero.With(field, value)
		if err != nil {
			return false, err
		}
		doc.Hero = hero
		return true, nil
	})
}

// UpdateAbout replaces one about field.
func (s *Store) UpdateAbout(ctx context.Context, field domain.AboutField, value string) error {
	return s.update(ctx, func(doc *domain.SiteConfig) (bool, error) {
		about, err := doc.About.With(field, value)
		if err != nil {
			return false, err
		}
		doc.About = about
		return true, nil
	})
}

// UpdateProject replaces one field on the project with the given id.
// An unknown id is a silent no-op: nothing is inserted, changed or persisted.
func (s *Store) UpdateProject(ctx context.Context, id string, field domain.ProjectField, value string) error {
	return s.update(ctx, func(doc *domain.SiteConfig) (bool, error) {
		i := doc.ProjectIndex(id)
		if i < 0 {
			return false, nil
		}
		p, err := doc.Projects[i].With(field, value)
		if err != nil {
			return false, err
		}
		projects := make([]domain.Project, len(doc.Projects))
		copy(projects, doc.Projects)
		projects[i] = p
		doc.Projects = projects
		return true, nil
	})
}

// Reset replaces the whole document and persists it.
func (s *Store) Reset(ctx context.Context, doc domain.SiteConfig) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return s.update(ctx, func(cur *domain.SiteConfig) (bool, error) {
		*cur = doc.Clone()
		return true, nil
	})
}

// update applies mutate to a shallow copy of the root and, if it changed
// anything, persists the result before swapping it in. A failed save leaves
// the previous document in place.
func (s *Store) update(ctx context.Context, mutate func(*domain.SiteConfig) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc
	changed, err := mutate(&next)
	if err != nil || !changed {
		return err
	}

	if err := s.persist.Save(ctx, next); err != nil {
		s.logger.Error("failed to persist document", logger.Error(err))
		return err
	}
	s.doc = next
	return nil
}
