package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The nested document lives in a
// JSONB column; id, owner, title and timestamps are real columns so owned
// lookups and sorting never parse JSON.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new résumé.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, owner_id, title, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, res.ID, res.OwnerID, res.Title, data, res.CreatedAt, res.UpdatedAt)
	return err
}

// GetOwned fetches a résumé, filtering on id and owner in the same query.
func (r *PGRepo) GetOwned(ctx context.Context, id, ownerID string) (Resume, error) {
	const query = `
SELECT id, owner_id, title, data, created_at, updated_at
FROM resumes
WHERE id = $1 AND owner_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id, ownerID)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// ListByOwner lists résumés ordered by most recent update.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, owner_id, title, data, created_at, updated_at
FROM resumes
WHERE owner_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Update persists the full document when id and owner match.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	const query = `
UPDATE resumes
SET title = $1, data = $2, updated_at = $3
WHERE id = $4 AND owner_id = $5`

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	result, err := r.DB.ExecContext(ctx, query, res.Title, data, res.UpdatedAt, res.ID, res.OwnerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record when id and owner match.
func (r *PGRepo) Delete(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND owner_id = $2`

	result, err := r.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		res  Resume
		data []byte
	)
	if err := row.Scan(&res.ID, &res.OwnerID, &res.Title, &data, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return Resume{}, err
	}
	// Columns are the source of truth for identity and timestamps; the JSONB
	// payload fills in the nested sections.
	id, owner, title := res.ID, res.OwnerID, res.Title
	createdAt, updatedAt := res.CreatedAt, res.UpdatedAt
	if err := json.Unmarshal(data, &res); err != nil {
		return Resume{}, fmt.Errorf("unmarshal resume %s: %w", id, err)
	}
	res.ID = id
	res.OwnerID = owner
	res.Title = title
	res.CreatedAt = createdAt
	res.UpdatedAt = updatedAt
	return res, nil
}

var _ Repo = (*PGRepo)(nil)
