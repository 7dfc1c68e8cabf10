package ids

import "github.com/google/uuid"

// Generator produces collision free identifiers. Stores never retry on a
// duplicate, so implementations must make collisions negligible.
type Generator interface {
	NewID() string
}

// UUID generates random (v4) UUID strings.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }
