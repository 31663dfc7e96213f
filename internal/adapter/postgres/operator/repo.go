// Package operator implements the Operator repository using PostgreSQL.
package operator

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

// Repo provides operator persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new operator repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const operatorSelect = `
SELECT o.id, o.user_id, u.username, o.created_at
FROM operators o
JOIN users u ON u.id = o.user_id`

const createSQL = `
WITH inserted AS (
    INSERT INTO operators (id, user_id, created_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, created_at
)
SELECT i.id, i.user_id, u.username, i.created_at
FROM inserted i
JOIN users u ON u.id = i.user_id`

const getByIDSQL = operatorSelect + `
WHERE o.id = $1`

const getByUserIDSQL = operatorSelect + `
WHERE o.user_id = $1`

const listSQL = operatorSelect + `
ORDER BY o.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an operator by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	op, err := scanOperator(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "operator", id)
	}
	return op, nil
}

// GetByUserID returns the operator provisioned for a user.
// Returns domain.ErrNotFound when the user is not an operator.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Operator, error) {
	op, err := scanOperator(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "operator for user", userID)
	}
	return op, nil
}

// List returns all operators in creation order.
func (r *Repo) List(ctx context.Context) ([]domain.Operator, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	ops := []domain.Operator{}
	for rows.Next() {
		var op domain.Operator
		if err := rows.Scan(&op.ID, &op.UserID, &op.Username, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("list operators: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}

	return ops, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create provisions an operator for an existing user. A second operator for
// the same user yields domain.ErrAlreadyExists; an unknown user yields
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		op.ID, op.UserID, op.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanOperator(row)
	if err != nil {
		return nil, postgres.MapError(err, "operator", op.ID)
	}

	return created, nil
}

func scanOperator(row pgx.Row) (*domain.Operator, error) {
	var op domain.Operator
	if err := row.Scan(&op.ID, &op.UserID, &op.Username, &op.CreatedAt); err != nil {
		return nil, err
	}
	return &op, nil
}
