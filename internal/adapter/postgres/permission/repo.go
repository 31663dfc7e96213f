// Package permission implements the Permission repository using PostgreSQL.
package permission

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

// Repo provides permission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new permission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const permissionColumns = `id, dataset_id, operator_id, created_at`

const createSQL = `
INSERT INTO permissions (id, dataset_id, operator_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + permissionColumns

const getByIDSQL = `
SELECT ` + permissionColumns + `
FROM permissions
WHERE id = $1`

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM permissions WHERE operator_id = $1 AND dataset_id = $2
)`

const datasetIDsByOperatorSQL = `
SELECT dataset_id
FROM permissions
WHERE operator_id = $1
ORDER BY dataset_id`

const updateSQL = `
UPDATE permissions
SET dataset_id = $2, operator_id = $3
WHERE id = $1
RETURNING ` + permissionColumns

const deleteSQL = `DELETE FROM permissions WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether the operator holds a permission for the dataset.
func (r *Repo) Exists(ctx context.Context, operatorID, datasetID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, operatorID, datasetID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "permission for operator", operatorID)
	}
	return exists, nil
}

// DatasetIDsByOperator returns the ids of every dataset the operator may access.
func (r *Repo) DatasetIDsByOperator(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, datasetIDsByOperatorSQL, operatorID)
	if err != nil {
		return nil, fmt.Errorf("dataset ids by operator: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("dataset ids by operator: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// GetByID returns a permission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Permission, error) {
	p, err := scanPermission(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "permission", id)
	}
	return p, nil
}

// List returns permissions matching the filter in creation order.
func (r *Repo) List(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error) {
	b := postgres.Builder().
		Select("id", "dataset_id", "operator_id", "created_at").
		From("permissions").
		OrderBy("id")

	if filter.DatasetID != nil {
		b = b.Where("dataset_id = ?", *filter.DatasetID)
	}
	if filter.OperatorID != nil {
		b = b.Where("operator_id = ?", *filter.OperatorID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list permissions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	perms := []domain.Permission{}
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.DatasetID, &p.OperatorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("list permissions: %w", err)
		}
		perms = append(perms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}

	return perms, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create grants access. A duplicate (dataset, operator) pair yields
// domain.ErrAlreadyExists; a missing dataset or operator yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, p *domain.Permission) (*domain.Permission, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		p.ID, p.DatasetID, p.OperatorID, p.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanPermission(row)
	if err != nil {
		return nil, postgres.MapError(err, "permission", p.ID)
	}

	return created, nil
}

// Update re-points a permission to another dataset and/or operator.
func (r *Repo) Update(ctx context.Context, id, datasetID, operatorID uuid.UUID) (*domain.Permission, error) {
	p, err := scanPermission(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL, id, datasetID, operatorID))
	if err != nil {
		return nil, postgres.MapError(err, "permission", id)
	}
	return p, nil
}

// Delete revokes a permission.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "permission", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("permission %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanPermission(row pgx.Row) (*domain.Permission, error) {
	var p domain.Permission
	if err := row.Scan(&p.ID, &p.DatasetID, &p.OperatorID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
