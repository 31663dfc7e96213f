package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// CreateUser creates a login account (admin only). A taken username yields
// domain.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Username = domain.NormalizeUsername(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.users.Create(txCtx, &domain.User{
			ID:           domain.NewID(),
			Username:     input.Username,
			PasswordHash: hash,
			IsAdmin:      input.IsAdmin,
			CreatedAt:    time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create user: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"username": map[string]any{"new": created.Username},
				"is_admin": map[string]any{"new": created.IsAdmin},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username),
		slog.Bool("is_admin", created.IsAdmin),
	)

	return created, nil
}

// ProvisionOperator registers an existing user as an operator (admin only).
// A user can be provisioned once; a second attempt yields domain.ErrAlreadyExists.
func (s *Service) ProvisionOperator(ctx context.Context, userID uuid.UUID) (*domain.Operator, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	var created *domain.Operator
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		var createErr error
		created, createErr = s.operators.Create(txCtx, &domain.Operator{
			ID:        domain.NewID(),
			UserID:    userID,
			CreatedAt: time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create operator: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeOperator,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"user_id": map[string]any{"new": userID.String()},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "operator provisioned",
		slog.String("operator_id", created.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return created, nil
}

// ListOperators returns all operators with their usernames (admin only).
func (s *Service) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	ops, err := s.operators.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListOperators: %w", err)
	}
	return ops, nil
}
