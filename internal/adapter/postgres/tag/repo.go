// Package tag implements the Tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagger-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tagColumns = `id, dataset_id, name, is_active, created_at`

const createSQL = `
INSERT INTO tags (id, dataset_id, name, is_active, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tagColumns

const getByIDSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE id = $1`

const listByDatasetSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE dataset_id = $1
ORDER BY id`

const listActiveByDatasetSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE dataset_id = $1 AND is_active
ORDER BY id`

const setActiveSQL = `
UPDATE tags
SET is_active = $2
WHERE id = $1
RETURNING ` + tagColumns

const deleteSQL = `DELETE FROM tags WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	t, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}

	return t, nil
}

// ListByDataset returns tags of a dataset in insertion order. With
// activeOnly set, inactive tags are filtered out.
func (r *Repo) ListByDataset(ctx context.Context, datasetID uuid.UUID, activeOnly bool) ([]domain.Tag, error) {
	query := listByDatasetSQL
	if activeOnly {
		query = listActiveByDatasetSQL
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list tags by dataset: %w", err)
	}
	defer rows.Close()

	tags, err := scanTags(rows)
	if err != nil {
		return nil, fmt.Errorf("list tags by dataset: %w", err)
	}

	return tags, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tag. A missing dataset surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		t.ID, t.DatasetID, t.Name, t.IsActive, t.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", t.ID)
	}

	return created, nil
}

// SetActive toggles the is_active flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tag, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setActiveSQL, id, active)

	t, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}

	return t, nil
}

// Delete removes a tag and, by cascade, its labels.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.DatasetID, &t.Name, &t.IsActive, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.DatasetID, &t.Name, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
