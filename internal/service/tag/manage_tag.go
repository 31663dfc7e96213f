package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// SetTagActive toggles tag visibility for operators (admin only).
func (s *Service) SetTagActive(ctx context.Context, tagID uuid.UUID, active bool) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.tags.GetByID(txCtx, tagID)
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}

		updated, err = s.tags.SetActive(txCtx, tagID, active)
		if err != nil {
			return fmt.Errorf("set tag active: %w", err)
		}

		if old.IsActive == active {
			return nil
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTag,
			EntityID:   &tagID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"is_active": map[string]any{"old": old.IsActive, "new": active},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag updated",
		slog.String("tag_id", tagID.String()),
		slog.Bool("is_active", active),
	)

	return updated, nil
}

// DeleteTag removes a tag together with its labels (admin only).
func (s *Service) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.tags.GetByID(txCtx, tagID)
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}

		if err := s.tags.Delete(txCtx, tagID); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTag,
			EntityID:   &tagID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted", slog.String("tag_id", tagID.String()))

	return nil
}
