package linkModel

import "errors"

// Stage sentinels. Every failed operation surfaces exactly one of these, wrapped
// with the failing step's detail. There is no partial-success reporting: a step
// that fails after earlier writes leaves those writes in place (no compensating
// rollback exists across the three stores).
var (
	ErrNotFound          = errors.New("not found")
	ErrFetchFailure      = errors.New("fetch failure")
	ErrProcessingFailure = errors.New("processing failure")
	ErrEmbeddingFailure  = errors.New("embedding failure")
	ErrStoreFailure      = errors.New("store failure")
)
