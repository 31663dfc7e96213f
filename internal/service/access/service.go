// Package access resolves the calling operator and checks dataset permissions.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

type operatorRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Operator, error)
}

type permissionRepo interface {
	Exists(ctx context.Context, operatorID, datasetID uuid.UUID) (bool, error)
	DatasetIDsByOperator(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error)
}

// Service is the single permission guard in front of every dataset-scoped
// operator operation.
type Service struct {
	log         *slog.Logger
	operators   operatorRepo
	permissions permissionRepo
}

// NewService creates a new access service.
func NewService(logger *slog.Logger, operators operatorRepo, permissions permissionRepo) *Service {
	return &Service{
		log:         logger.With("service", "access"),
		operators:   operators,
		permissions: permissions,
	}
}

// IsPermitted reports whether the operator bound to userID holds a
// permission for datasetID. A user without an operator record yields
// domain.ErrOperatorNotProvisioned.
func (s *Service) IsPermitted(ctx context.Context, userID, datasetID uuid.UUID) (bool, error) {
	op, err := s.operatorFor(ctx, userID)
	if err != nil {
		return false, err
	}

	ok, err := s.permissions.Exists(ctx, op.ID, datasetID)
	if err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	return ok, nil
}

// CurrentOperator resolves the operator record of the authenticated caller.
func (s *Service) CurrentOperator(ctx context.Context) (*domain.Operator, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.operatorFor(ctx, userID)
}

// RequireAccess resolves the caller's operator and fails with
// domain.ErrAccessDenied unless it may work on datasetID.
func (s *Service) RequireAccess(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error) {
	op, err := s.CurrentOperator(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.permissions.Exists(ctx, op.ID, datasetID)
	if err != nil {
		return nil, fmt.Errorf("check permission: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "access denied",
			slog.String("operator_id", op.ID.String()),
			slog.String("dataset_id", datasetID.String()),
		)
		return nil, domain.ErrAccessDenied
	}

	return op, nil
}

// PermittedDatasets returns the ids of all datasets the operator may access.
func (s *Service) PermittedDatasets(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.permissions.DatasetIDsByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("list permitted datasets: %w", err)
	}
	return ids, nil
}

func (s *Service) operatorFor(ctx context.Context, userID uuid.UUID) (*domain.Operator, error) {
	op, err := s.operators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOperatorNotProvisioned
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return op, nil
}
