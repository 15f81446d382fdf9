package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // id -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Resume)}
}

// Create stores a new résumé.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.ID] = res
	return nil
}

// GetOwned returns the résumé only when both id and owner match.
func (r *MemoryRepo) GetOwned(ctx context.Context, id, ownerID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[id]
	if !ok || res.OwnerID != ownerID {
		return Resume{}, ErrNotFound
	}
	return res, nil
}

// ListByOwner returns the owner's résumés, most recently updated first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Resume, 0)
	for _, res := range r.data {
		if res.OwnerID == ownerID {
			out = append(out, res)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Update replaces the stored résumé when id and owner match.
func (r *MemoryRepo) Update(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[res.ID]
	if !ok || stored.OwnerID != res.OwnerID {
		return ErrNotFound
	}
	r.data[res.ID] = res
	return nil
}

// Delete removes the résumé when id and owner match.
func (r *MemoryRepo) Delete(ctx context.Context, id, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[id]
	if !ok || stored.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
