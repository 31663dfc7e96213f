// Package sentence implements the Sentence repository using PostgreSQL.
package sentence

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tagger-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// Repo provides sentence persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sentence repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sentenceColumns = `id, dataset_id, body, created_at`

const createSQL = `
INSERT INTO sentences (id, dataset_id, body, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + sentenceColumns

const getByIDSQL = `
SELECT ` + sentenceColumns + `
FROM sentences
WHERE id = $1`

const listByDatasetSQL = `
SELECT ` + sentenceColumns + `
FROM sentences
WHERE dataset_id = $1
ORDER BY id`

const deleteSQL = `DELETE FROM sentences WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a sentence by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	s, err := scanSentence(row)
	if err != nil {
		return nil, postgres.MapError(err, "sentence", id)
	}

	return s, nil
}

// ListByDataset returns all sentences of a dataset in insertion order.
func (r *Repo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByDatasetSQL, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list sentences by dataset: %w", err)
	}
	defer rows.Close()

	sentences, err := scanSentences(rows)
	if err != nil {
		return nil, fmt.Errorf("list sentences by dataset: %w", err)
	}

	return sentences, nil
}

// ListUnlabeledInDatasets returns sentences of the given datasets that carry
// no label from any operator, in insertion order.
func (r *Repo) ListUnlabeledInDatasets(ctx context.Context, datasetIDs []uuid.UUID) ([]domain.Sentence, error) {
	if len(datasetIDs) == 0 {
		return []domain.Sentence{}, nil
	}

	query, args, err := postgres.Builder().
		Select("s.id", "s.dataset_id", "s.body", "s.created_at").
		From("sentences s").
		Where(sq.Eq{"s.dataset_id": datasetIDs}).
		Where("NOT EXISTS (SELECT 1 FROM labeled_sentences ls WHERE ls.sentence_id = s.id)").
		OrderBy("s.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unlabeled query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list unlabeled sentences: %w", err)
	}
	defer rows.Close()

	sentences, err := scanSentences(rows)
	if err != nil {
		return nil, fmt.Errorf("list unlabeled sentences: %w", err)
	}

	return sentences, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a single sentence.
func (r *Repo) Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		s.ID, s.DatasetID, s.Body, s.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSentence(row)
	if err != nil {
		return nil, postgres.MapError(err, "sentence", s.ID)
	}

	return created, nil
}

// BulkInsert inserts sentences using pgx.Batch and returns the number of
// inserted rows. Callers wrap it in a transaction to make the batch atomic.
func (r *Repo) BulkInsert(ctx context.Context, sentences []domain.Sentence) (int, error) {
	if len(sentences) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range sentences {
		batch.Queue(
			`INSERT INTO sentences (id, dataset_id, body, created_at) VALUES ($1, $2, $3, $4)`,
			s.ID, s.DatasetID, s.Body, s.CreatedAt.UTC().Truncate(time.Microsecond),
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// Delete removes a sentence and, by cascade, its labels.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "sentence", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("sentence %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "sentence", uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSentence(row pgx.Row) (*domain.Sentence, error) {
	var s domain.Sentence
	if err := row.Scan(&s.ID, &s.DatasetID, &s.Body, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSentences(rows pgx.Rows) ([]domain.Sentence, error) {
	sentences := []domain.Sentence{}
	for rows.Next() {
		var s domain.Sentence
		if err := rows.Scan(&s.ID, &s.DatasetID, &s.Body, &s.CreatedAt); err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}
