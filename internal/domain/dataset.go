package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is a named collection of sentences with its own tag vocabulary.
type Dataset struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DatasetUpdateParams holds a partial update. Nil fields are left unchanged.
type DatasetUpdateParams struct {
	Name        *string
	Description *string
}

// Tag is a label that can be attached to sentences of one dataset.
type Tag struct {
	ID        uuid.UUID
	DatasetID uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Sentence is a single taggable unit of text. DatasetID is nil for
// sentences detached from any dataset.
type Sentence struct {
	ID        uuid.UUID
	DatasetID *uuid.UUID
	Body      string
	CreatedAt time.Time
}

// BelongsTo reports whether the sentence is attached to the given dataset.
func (s *Sentence) BelongsTo(datasetID uuid.UUID) bool {
	return s.DatasetID != nil && *s.DatasetID == datasetID
}

// ImportResult summarises a bulk sentence import.
type ImportResult struct {
	Imported int
	Skipped  int
}
