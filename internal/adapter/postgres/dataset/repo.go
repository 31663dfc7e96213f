// Package dataset implements the Dataset repository using PostgreSQL.
package dataset

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

// Repo provides dataset persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dataset repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const datasetColumns = `id, name, description, created_at, updated_at`

const createSQL = `
INSERT INTO datasets (id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + datasetColumns

const getByIDSQL = `
SELECT ` + datasetColumns + `
FROM datasets
WHERE id = $1`

const listSQL = `
SELECT ` + datasetColumns + `
FROM datasets
ORDER BY id`

const deleteSQL = `DELETE FROM datasets WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dataset by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	ds, err := scanDataset(row)
	if err != nil {
		return nil, postgres.MapError(err, "dataset", id)
	}

	return ds, nil
}

// List returns every dataset in creation order.
func (r *Repo) List(ctx context.Context) ([]domain.Dataset, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	datasets, err := scanDatasets(rows)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}

	return datasets, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dataset and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error) {
	createdAt := ds.CreatedAt.UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		ds.ID, ds.Name, ds.Description, createdAt,
	)

	created, err := scanDataset(row)
	if err != nil {
		return nil, postgres.MapError(err, "dataset", ds.ID)
	}

	return created, nil
}

// Update applies a partial update. Nil params fields are left untouched;
// updated_at is always bumped.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DatasetUpdateParams) (*domain.Dataset, error) {
	b := postgres.Builder().
		Update("datasets").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where("id = ?", id).
		Suffix("RETURNING " + datasetColumns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update dataset: %w", err)
	}

	updated, err := scanDataset(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dataset", id)
	}

	return updated, nil
}

// Delete removes a dataset. Tags, sentences, permissions and labels go with
// it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "dataset", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("dataset %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDataset(row pgx.Row) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := row.Scan(&ds.ID, &ds.Name, &ds.Description, &ds.CreatedAt, &ds.UpdatedAt); err != nil {
		return nil, err
	}
	return &ds, nil
}

func scanDatasets(rows pgx.Rows) ([]domain.Dataset, error) {
	datasets := []domain.Dataset{}
	for rows.Next() {
		var ds domain.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Description, &ds.CreatedAt, &ds.UpdatedAt); err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return datasets, nil
}
