package app

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/redis"
	"github.com/MrSnakeDoc/folio/internal/sources/seed"
	"github.com/MrSnakeDoc/folio/internal/store"
	"github.com/MrSnakeDoc/folio/internal/store/file"
	"github.com/MrSnakeDoc/folio/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/store/sqlite"
)

// OpenBackend opens the storage backend selected by cfg.Storage.
// Redis is retried until RedisConnectTimeout; the others fail immediately.
func OpenBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error) {
	switch cfg.Storage {
	case config.StorageFile:
		log.Info("using file storage", logger.String("dir", cfg.DataDir))
		return file.New(cfg.DataDir)

	case config.StorageSQLite:
		log.Info("using sqlite storage", logger.String("path", cfg.SQLitePath))
		return sqlite.New(cfg.SQLitePath)

	case config.StorageRedis:
		client, err := redis.Connect(ctx, redis.Options{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil

	case config.StorageMemory:
		log.Warn("using memory storage, edits are lost on restart")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
}

// Fallback is the document used when nothing readable is stored: the seed
// file when one is configured, the built-in default otherwise.
func Fallback(cfg *config.Config, log logger.Logger) (domain.SiteConfig, error) {
	if cfg.SeedFile == "" {
		return domain.DefaultSiteConfig(), nil
	}
	doc, err := seed.FromFile(cfg.SeedFile)
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("failed to load seed file %s: %w", cfg.SeedFile, err)
	}
	log.Info("using seed document",
		logger.String("file", cfg.SeedFile),
		logger.Int("projects", len(doc.Projects)))
	return doc, nil
}

// Content bundles an opened content store with the backend behind it.
// Close releases the backend.
type Content struct {
	Store       *content.Store
	Persistence *content.Persistence
	Fallback    domain.SiteConfig
	backend     store.Backend
}

func (c *Content) Close() error { return c.backend.Close() }

// OpenContent wires backend, fallback and content store together. It is
// shared by the server and the maintenance commands.
func OpenContent(ctx context.Context, cfg *config.Config, log logger.Logger) (*Content, error) {
	fallback, err := Fallback(cfg, log)
	if err != nil {
		return nil, err
	}
	backend, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}

	p := content.NewPersistence(backend)
	st, err := content.Open(ctx, p, fallback, log)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return &Content{
		Store:       st,
		Persistence: p,
		Fallback:    fallback,
		backend:     backend,
	}, nil
}
