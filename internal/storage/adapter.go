// Package storage holds the durable key/value backends the stores persist
// their serialized collections to. Backends treat values as opaque bytes.
package storage

import (
	"context"
	"errors"
)

// Keys used by the stores. Each store owns exactly one key.
const (
	BookingsKey = "bookings-storage"
	ReviewsKey  = "reviews-storage"
)

var (
	ErrBackend    = errors.New("storage backend failure")
	ErrInvalidKey = errors.New("invalid storage key")
)

// Adapter is the contract every backend satisfies. Load reports ok=false,
// with a nil error, when nothing has been saved under key yet.
type Adapter interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

func checkKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
