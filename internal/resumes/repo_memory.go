package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
// It backs local development when no database is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	byOwner map[string][]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byOwner: make(map[string][]Record)}
}

// Insert stores the record.
func (r *MemoryRepo) Insert(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOwner[record.OwnerID] = append(r.byOwner[record.OwnerID], record)
	return nil
}

// ListByOwner returns the owner's records, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := append([]Record(nil), r.byOwner[ownerID]...)
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].CreatedAt.After(records[b].CreatedAt)
	})

	if offset >= len(records) {
		return []Record{}, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}
