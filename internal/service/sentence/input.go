package sentence

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// CreateSentenceInput holds the parameters for adding one sentence.
type CreateSentenceInput struct {
	DatasetID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i CreateSentenceInput) Validate() error {
	var errs []domain.FieldError

	if i.DatasetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "required"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
