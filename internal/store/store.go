// Package store defines the key-value boundary the content document is
// persisted through. Backends live in sub-packages.
package store

import (
	"context"
	"errors"
)

// DocumentKey is the fixed key the site document is stored under.
const DocumentKey = "portfolio_config"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("store: key not found")

// Backend stores opaque values under string keys.
// Put overwrites any previous value; there is no merge.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
