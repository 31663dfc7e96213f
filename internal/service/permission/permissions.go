package permission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// ListPermissions returns permissions, optionally narrowed by dataset or
// operator (admin only).
func (s *Service) ListPermissions(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	list, err := s.permissions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return list, nil
}

// GrantPermission lets an operator work on a dataset (admin only). Granting
// the same pair twice yields domain.ErrAlreadyExists.
func (s *Service) GrantPermission(ctx context.Context, input GrantInput) (*domain.Permission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Permission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkTargets(txCtx, input); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.permissions.Create(txCtx, &domain.Permission{
			ID:         domain.NewID(),
			DatasetID:  input.DatasetID,
			OperatorID: input.OperatorID,
			CreatedAt:  time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create permission: %w", createErr)
		}

		return s.logAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"dataset_id":  map[string]any{"new": input.DatasetID.String()},
			"operator_id": map[string]any{"new": input.OperatorID.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "permission granted",
		slog.String("permission_id", created.ID.String()),
		slog.String("dataset_id", input.DatasetID.String()),
		slog.String("operator_id", input.OperatorID.String()),
	)

	return created, nil
}

// UpdatePermission re-points a permission to another dataset or operator
// (admin only).
func (s *Service) UpdatePermission(ctx context.Context, permissionID uuid.UUID, input GrantInput) (*domain.Permission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Permission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.permissions.GetByID(txCtx, permissionID)
		if err != nil {
			return fmt.Errorf("get permission: %w", err)
		}

		if err := s.checkTargets(txCtx, input); err != nil {
			return err
		}

		updated, err = s.permissions.Update(txCtx, permissionID, input.DatasetID, input.OperatorID)
		if err != nil {
			return fmt.Errorf("update permission: %w", err)
		}

		changes := make(map[string]any)
		if old.DatasetID != updated.DatasetID {
			changes["dataset_id"] = map[string]any{"old": old.DatasetID.String(), "new": updated.DatasetID.String()}
		}
		if old.OperatorID != updated.OperatorID {
			changes["operator_id"] = map[string]any{"old": old.OperatorID.String(), "new": updated.OperatorID.String()}
		}
		if len(changes) == 0 {
			return nil
		}

		return s.logAudit(txCtx, userID, permissionID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "permission updated", slog.String("permission_id", permissionID.String()))

	return updated, nil
}

// RevokePermission deletes a permission (admin only). Labels created under
// it are kept.
func (s *Service) RevokePermission(ctx context.Context, permissionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.permissions.Delete(txCtx, permissionID); err != nil {
			return fmt.Errorf("delete permission: %w", err)
		}
		return s.logAudit(txCtx, userID, permissionID, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "permission revoked", slog.String("permission_id", permissionID.String()))

	return nil
}

// checkTargets reports a missing dataset or operator as a field error.
func (s *Service) checkTargets(ctx context.Context, input GrantInput) error {
	var errs []domain.FieldError

	if _, err := s.datasets.GetByID(ctx, input.DatasetID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get dataset: %w", err)
		}
		errs = append(errs, domain.FieldError{Field: "dataset_id", Message: "dataset not found"})
	}
	if _, err := s.operators.GetByID(ctx, input.OperatorID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get operator: %w", err)
		}
		errs = append(errs, domain.FieldError{Field: "operator_id", Message: "operator not found"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, userID, permissionID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypePermission,
		EntityID:   &permissionID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
