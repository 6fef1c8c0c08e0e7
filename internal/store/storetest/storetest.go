// Package storetest holds behavior checks shared by every store.Backend.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/folio/internal/store"
)

// Run exercises get/put/overwrite semantics against b.
func Run(t *testing.T, b store.Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := b.Get(ctx, "absent")
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		if err := b.Put(ctx, store.DocumentKey, []byte(`{"a":1}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := b.Get(ctx, store.DocumentKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `{"a":1}` {
			t.Errorf("Get() = %q, want %q", got, `{"a":1}`)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := b.Put(ctx, store.DocumentKey, []byte("first")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := b.Put(ctx, store.DocumentKey, []byte("second")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := b.Get(ctx, store.DocumentKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "second" {
			t.Errorf("Get() = %q, want %q", got, "second")
		}
	})

	t.Run("utf8 text", func(t *testing.T) {
		value := []byte(`{"title":"Café — ünïcode ✓"}`)
		if err := b.Put(ctx, "utf8", value); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := b.Get(ctx, "utf8")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != string(value) {
			t.Errorf("Get() = %q, want %q", got, value)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := b.Ping(ctx); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})
}
