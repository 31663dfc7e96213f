package tag

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// MaxNameLength bounds tag names.
const MaxNameLength = 255

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	DatasetID uuid.UUID
	Name      string
	IsActive  bool
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.DatasetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
