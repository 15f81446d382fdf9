package resumes

import "context"

// Repo defines persistence for résumé documents. Every lookup or mutation of
// an existing document filters on id and owner together in a single query, so
// ownership can never be checked separately from existence.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetOwned(ctx context.Context, id, ownerID string) (Resume, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id, ownerID string) error
}
