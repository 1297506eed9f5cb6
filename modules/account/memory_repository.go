package account

import (
	"context"
	"slices"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepository returns a Repository that keeps records in process memory.
// Records are returned in insertion order and copied on the way in and out.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Insert(ctx context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.records, func(existing Record) bool { return existing.ID == rec.ID }) {
		return ErrAlreadyExists
	}
	rec.Tags = slices.Clone(rec.Tags)
	r.records = append(r.records, rec)
	return nil
}

func (r *memoryRepository) FindByUser(ctx context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Record
	for _, rec := range r.records {
		if rec.UserID == userID {
			rec.Tags = slices.Clone(rec.Tags)
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, userID, id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(userID, id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	rec := r.records[i]
	rec.Tags = slices.Clone(rec.Tags)
	return rec, nil
}

func (r *memoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(userID, id)
	if i < 0 {
		return ErrNotFound
	}
	r.records = slices.Delete(r.records, i, i+1)
	return nil
}

func (r *memoryRepository) index(userID, id string) int {
	return slices.IndexFunc(r.records, func(rec Record) bool {
		return rec.UserID == userID && rec.ID == id
	})
}
