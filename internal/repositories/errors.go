package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// them with errors.Is to translate persistence outcomes into API responses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
