package domain

import (
	"time"

	"github.com/google/uuid"
)

// LabeledSentence records that an operator applied a tag to a sentence.
// Records are immutable once created.
type LabeledSentence struct {
	ID         uuid.UUID
	SentenceID uuid.UUID
	TagID      uuid.UUID
	OperatorID uuid.UUID
	CreatedAt  time.Time
}

// LabeledSentenceView is a LabeledSentence joined with the text it refers to.
// Returned by read paths (search, list by tag).
type LabeledSentenceView struct {
	LabeledSentence
	DatasetID    uuid.UUID
	SentenceBody string
	TagName      string
}

// LabelActivity is one labeling event inside a reporting window.
type LabelActivity struct {
	OperatorID uuid.UUID
	Username   string
	CreatedAt  time.Time
}

// OperatorActivity is the per-operator line of a daily report.
type OperatorActivity struct {
	OperatorID uuid.UUID
	Username   string
	Count      int
}

// ActivityReport aggregates one calendar day of labeling.
// Operators without labels on that day are absent.
type ActivityReport struct {
	Day        time.Time
	Operators  []OperatorActivity
	TotalCount int
}
