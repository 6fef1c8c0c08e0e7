package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/store"
)

var (
	// ErrNotFound means nothing has been persisted yet.
	ErrNotFound = store.ErrNotFound
	// ErrCorrupt means a value exists but is not a document.
	ErrCorrupt = errors.New("persisted document is corrupt")
	// ErrSerialize means the document could not be encoded. Never expected
	// for a pure-data document; fatal when it happens.
	ErrSerialize = errors.New("failed to serialize document")
)

// Persistence reads and writes the whole document under store.DocumentKey
// as UTF-8 JSON. There is no version tag and no migration.
type Persistence struct {
	backend store.Backend
	key     string
}

func NewPersistence(backend store.Backend) *Persistence {
	return &Persistence{backend: backend, key: store.DocumentKey}
}

// Save overwrites the stored document.
func (p *Persistence) Save(ctx context.Context, doc domain.SiteConfig) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := p.backend.Put(ctx, p.key, data); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

// Load returns the stored document, ErrNotFound, ErrCorrupt, or a backend error.
func (p *Persistence) Load(ctx context.Context) (domain.SiteConfig, error) {
	data, err := p.backend.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SiteConfig{}, ErrNotFound
		}
		return domain.SiteConfig{}, fmt.Errorf("failed to read document: %w", err)
	}

	if err := checkSections(data); err != nil {
		return domain.SiteConfig{}, err
	}
	var doc domain.SiteConfig
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := doc.Validate(); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return doc, nil
}

// checkSections rejects JSON that parses but is not a document: a bare
// null, or an object missing (or nulling) hero, about or projects.
func checkSections(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if sections == nil {
		return fmt.Errorf("%w: document is null", ErrCorrupt)
	}
	for _, key := range []string{"hero", "about", "projects"} {
		raw, ok := sections[key]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("%w: missing %q", ErrCorrupt, key)
		}
	}
	return nil
}

// Ping reports whether the backend is reachable.
func (p *Persistence) Ping(ctx context.Context) error {
	return p.backend.Ping(ctx)
}
