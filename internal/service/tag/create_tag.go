package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// CreateTag adds a tag to a dataset (admin only). No dataset permission is
// required. An unknown dataset is reported as a validation error.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
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

	name := strings.TrimSpace(input.Name)

	var tag *domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.datasets.GetByID(txCtx, input.DatasetID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("dataset_id", "dataset not found")
			}
			return fmt.Errorf("get dataset: %w", err)
		}

		var createErr error
		tag, createErr = s.tags.Create(txCtx, &domain.Tag{
			ID:        domain.NewID(),
			DatasetID: input.DatasetID,
			Name:      name,
			IsActive:  input.IsActive,
			CreatedAt: time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create tag: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTag,
			EntityID:   &tag.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"dataset_id": map[string]any{"new": input.DatasetID.String()},
				"name":       map[string]any{"new": name},
				"is_active":  map[string]any{"new": input.IsActive},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("dataset_id", input.DatasetID.String()),
		slog.String("tag_id", tag.ID.String()),
		slog.String("name", name),
	)

	return tag, nil
}
