package labeling

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// LabelInput identifies the sentence and the tag to attach to it.
type LabelInput struct {
	SentenceID uuid.UUID
	TagID      uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i LabelInput) Validate() error {
	var errs []domain.FieldError

	if i.SentenceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sentence_id", Message: "required"})
	}
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
