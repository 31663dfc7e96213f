// Package label implements the LabeledSentence repository using PostgreSQL,
// including the full-text search and reporting read paths.
package label

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

// Repo provides labeled-sentence persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new label repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO labeled_sentences (id, sentence_id, tag_id, operator_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, sentence_id, tag_id, operator_id, created_at`

// searchSQL matches the query against sentence body, dataset name and
// description, and tag name. $1 dataset, $2 regconfig, $3 query.
const searchSQL = `
SELECT x.id, x.sentence_id, x.tag_id, x.operator_id, x.created_at,
       x.dataset_id, x.body, x.tag_name
FROM (
    SELECT ls.id, ls.sentence_id, ls.tag_id, ls.operator_id, ls.created_at,
           s.dataset_id, s.body, t.name AS tag_name,
           to_tsvector($2::regconfig,
               s.body || ' ' || d.name || ' ' || d.description || ' ' || t.name) AS doc
    FROM labeled_sentences ls
    JOIN sentences s ON s.id = ls.sentence_id
    JOIN datasets d ON d.id = s.dataset_id
    JOIN tags t ON t.id = ls.tag_id
    WHERE s.dataset_id = $1
) x, plainto_tsquery($2::regconfig, $3) q
WHERE x.doc @@ q
ORDER BY ts_rank(x.doc, q) DESC, x.id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a labeled sentence. There is no uniqueness constraint, so
// repeated labels of the same pair produce distinct rows.
func (r *Repo) Create(ctx context.Context, ls *domain.LabeledSentence) (*domain.LabeledSentence, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		ls.ID, ls.SentenceID, ls.TagID, ls.OperatorID, ls.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	var out domain.LabeledSentence
	if err := row.Scan(&out.ID, &out.SentenceID, &out.TagID, &out.OperatorID, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "labeled_sentence", ls.ID)
	}

	return &out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Search runs a full-text query over labeled sentences of one dataset and
// returns every match, best matches first.
func (r *Repo) Search(ctx context.Context, datasetID uuid.UUID, textConfig, query string) ([]domain.LabeledSentenceView, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, searchSQL, datasetID, textConfig, query)
	if err != nil {
		return nil, fmt.Errorf("search labeled sentences: %w", err)
	}
	defer rows.Close()

	views, err := scanViews(rows)
	if err != nil {
		return nil, fmt.Errorf("search labeled sentences: %w", err)
	}

	return views, nil
}

// ListByDatasetAndTag returns labels carrying the tag on sentences of the
// dataset, oldest first.
func (r *Repo) ListByDatasetAndTag(ctx context.Context, datasetID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error) {
	query, args, err := postgres.Builder().
		Select(
			"ls.id", "ls.sentence_id", "ls.tag_id", "ls.operator_id", "ls.created_at",
			"s.dataset_id", "s.body", "t.name",
		).
		From("labeled_sentences ls").
		Join("sentences s ON s.id = ls.sentence_id").
		Join("tags t ON t.id = ls.tag_id").
		Where("s.dataset_id = ?", datasetID).
		Where("ls.tag_id = ?", tagID).
		OrderBy("ls.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by tag: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list labels by tag: %w", err)
	}
	defer rows.Close()

	views, err := scanViews(rows)
	if err != nil {
		return nil, fmt.Errorf("list labels by tag: %w", err)
	}

	return views, nil
}

// ListCreatedBetween returns one row per label created in [from, to) with the
// labeling operator's username.
func (r *Repo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.LabelActivity, error) {
	query, args, err := postgres.Builder().
		Select("ls.operator_id", "u.username", "ls.created_at").
		From("labeled_sentences ls").
		Join("operators o ON o.id = ls.operator_id").
		Join("users u ON u.id = o.user_id").
		Where("ls.created_at >= ?", from).
		Where("ls.created_at < ?", to).
		OrderBy("ls.created_at", "ls.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list label activity: %w", err)
	}
	defer rows.Close()

	activity := []domain.LabelActivity{}
	for rows.Next() {
		var a domain.LabelActivity
		if err := rows.Scan(&a.OperatorID, &a.Username, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("list label activity: %w", err)
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list label activity: %w", err)
	}

	return activity, nil
}

func scanViews(rows pgx.Rows) ([]domain.LabeledSentenceView, error) {
	views := []domain.LabeledSentenceView{}
	for rows.Next() {
		var v domain.LabeledSentenceView
		if err := rows.Scan(
			&v.ID, &v.SentenceID, &v.TagID, &v.OperatorID, &v.CreatedAt,
			&v.DatasetID, &v.SentenceBody, &v.TagName,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
