package dataset

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
)

// CreateDatasetInput holds the parameters for creating a dataset.
type CreateDatasetInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateDatasetInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDatasetInput holds a partial update.
type UpdateDatasetInput struct {
	DatasetID   uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateDatasetInput) Validate() error {
	var errs []domain.FieldError

	if i.DatasetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
