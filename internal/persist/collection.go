// Package persist keeps an ordered, copy-on-write collection in memory and
// mirrors it to a key/value backend after every committed change.
//
// The serialized form is the envelope
//
//	{"state":{"<field>":[...]},"version":0}
//
// so the persisted blobs stay readable by clients that share the same keys.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Version of the envelope. Bumped only if the item layout changes.
const Version = 0

// SaveTimeout bounds a single backend write.
var SaveTimeout = 30 * time.Second

var (
	ErrLoad    = errors.New("load persisted state")
	ErrCorrupt = errors.New("persisted state is corrupt")
	ErrSave    = errors.New("persist state")
)

type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

type envelope struct {
	State   map[string]json.RawMessage `json:"state"`
	Version int                        `json:"version"`
}

// Collection is safe for concurrent use. Readers never block: they see the
// slice published by the last successful commit. Writers are serialized.
type Collection[T any] struct {
	backend Backend
	key     string
	field   string
	log     *slog.Logger

	mu    sync.Mutex
	items atomic.Pointer[[]T]
}

// Open reads key from backend once. A missing key yields an empty collection.
func Open[T any](ctx context.Context, backend Backend, key, field string, log *slog.Logger) (*Collection[T], error) {
	c := &Collection[T]{backend: backend, key: key, field: field, log: log}

	data, ok, err := backend.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, key, err)
	}

	items := []T{}
	if ok {
		items, err = Decode[T](data, field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	c.items.Store(&items)

	log.Debug("state loaded", "key", key, "items", len(items), "found", ok)
	return c, nil
}

// View returns the current published slice. Callers must treat it as read only.
func (c *Collection[T]) View() []T {
	return *c.items.Load()
}

// Items returns a copy of the current slice.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.View())
}

// Update hands fn a private copy of the current items. When fn reports a
// change, the result is saved to the backend and, only if the save succeeds,
// published as the new collection. A failed save leaves the collection as it was.
//
// What gets published is the decoded form of the saved bytes, so memory always
// equals what a reload would produce. The returned slice is that published
// collection (or the current one when nothing changed) and is read only.
//
// The save ignores cancellation of ctx: once a write may have reached the
// backend, abandoning it would let memory and storage disagree.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, bool)) ([]T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.View()
	next, changed := fn(slices.Clone(current))
	if !changed {
		return current, false, nil
	}

	data, err := Encode(next, c.field)
	if err != nil {
		return current, false, fmt.Errorf("%w %s: %w", ErrSave, c.key, err)
	}
	published, err := Decode[T](data, c.field)
	if err != nil {
		return current, false, fmt.Errorf("%w %s: %w", ErrSave, c.key, err)
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), SaveTimeout)
	defer cancel()
	if err := c.backend.Save(saveCtx, c.key, data); err != nil {
		c.log.Error("state save failed", "key", c.key, "items", len(next), "error", err)
		return current, false, fmt.Errorf("%w %s: %w", ErrSave, c.key, err)
	}

	c.items.Store(&published)
	return published, true, nil
}

func Encode[T any](items []T, field string) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		State:   map[string]json.RawMessage{field: raw},
		Version: Version,
	})
}

func Decode[T any](data []byte, field string) ([]T, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	items := []T{}
	raw, ok := env.State[field]
	if !ok || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, field, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
