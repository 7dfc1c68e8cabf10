package review

import (
	"errors"

	"travelbook/internal/persist"
)

var (
	// ErrPersist wraps every failure to write the collection to storage.
	ErrPersist = persist.ErrSave
	ErrSeed    = errors.New("invalid seed reviews")
)
