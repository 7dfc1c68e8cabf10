package booking

import "travelbook/internal/persist"

// ErrPersist wraps every failure to write the collection to storage.
// Not-found ids are never an error.
var ErrPersist = persist.ErrSave
