package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a non-admin user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           domain.NewID(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, is_admin, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.IsAdmin, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedOperator creates a user and an operator record for it.
func SeedOperator(t *testing.T, pool *pgxpool.Pool) domain.Operator {
	t.Helper()

	user := SeedUser(t, pool)
	op := domain.Operator{
		ID:        domain.NewID(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO operators (id, user_id, created_at) VALUES ($1, $2, $3)`,
		op.ID, op.UserID, op.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOperator: %v", err)
	}

	return op
}

// SeedDataset creates a dataset with the given name.
func SeedDataset(t *testing.T, pool *pgxpool.Pool, name string) domain.Dataset {
	t.Helper()

	ts := now()
	ds := domain.Dataset{
		ID:          domain.NewID(),
		Name:        name,
		Description: "seeded " + uniqueSuffix(),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO datasets (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ds.ID, ds.Name, ds.Description, ds.CreatedAt, ds.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDataset: %v", err)
	}

	return ds
}

// SeedTag creates a tag in the dataset.
func SeedTag(t *testing.T, pool *pgxpool.Pool, datasetID uuid.UUID, name string, active bool) domain.Tag {
	t.Helper()

	tag := domain.Tag{
		ID:        domain.NewID(),
		DatasetID: datasetID,
		Name:      name,
		IsActive:  active,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, dataset_id, name, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tag.ID, tag.DatasetID, tag.Name, tag.IsActive, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedSentence creates a sentence; a nil datasetID leaves it detached.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, datasetID *uuid.UUID, body string) domain.Sentence {
	t.Helper()

	s := domain.Sentence{
		ID:        domain.NewID(),
		DatasetID: datasetID,
		Body:      body,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sentences (id, dataset_id, body, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.DatasetID, s.Body, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSentence: %v", err)
	}

	return s
}

// SeedPermission grants the operator access to the dataset.
func SeedPermission(t *testing.T, pool *pgxpool.Pool, datasetID, operatorID uuid.UUID) domain.Permission {
	t.Helper()

	p := domain.Permission{
		ID:         domain.NewID(),
		DatasetID:  datasetID,
		OperatorID: operatorID,
		CreatedAt:  now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO permissions (id, dataset_id, operator_id, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.DatasetID, p.OperatorID, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPermission: %v", err)
	}

	return p
}

// SeedLabel records a label at the given time.
func SeedLabel(t *testing.T, pool *pgxpool.Pool, sentenceID, tagID, operatorID uuid.UUID, at time.Time) domain.LabeledSentence {
	t.Helper()

	ls := domain.LabeledSentence{
		ID:         domain.NewID(),
		SentenceID: sentenceID,
		TagID:      tagID,
		OperatorID: operatorID,
		CreatedAt:  at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO labeled_sentences (id, sentence_id, tag_id, operator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ls.ID, ls.SentenceID, ls.TagID, ls.OperatorID, ls.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLabel: %v", err)
	}

	return ls
}
