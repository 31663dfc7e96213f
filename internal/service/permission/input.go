package permission

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// GrantInput identifies the dataset and the operator of a permission.
type GrantInput struct {
	DatasetID  uuid.UUID
	OperatorID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GrantInput) Validate() error {
	var errs []domain.FieldError

	if i.DatasetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "required"})
	}
	if i.OperatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "operator_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
