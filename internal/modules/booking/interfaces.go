package booking

import "context"

// Persistence is the durable key/value backend the store writes through to.
type Persistence interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}
