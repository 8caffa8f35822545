package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record matches the lookup.
var ErrNotFound = errors.New("not found")

// Repo defines persistence operations for resume records.
type Repo interface {
	Insert(ctx context.Context, record Record) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Record, error)
}
