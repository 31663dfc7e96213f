package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// CreateDataset creates a new dataset (admin only).
func (s *Service) CreateDataset(ctx context.Context, input CreateDatasetInput) (*domain.Dataset, error) {
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
	description := strings.TrimSpace(input.Description)

	var ds *domain.Dataset
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()

		var createErr error
		ds, createErr = s.datasets.Create(txCtx, &domain.Dataset{
			ID:          domain.NewID(),
			Name:        name,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if createErr != nil {
			return fmt.Errorf("create dataset: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDataset,
			EntityID:   &ds.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dataset created",
		slog.String("dataset_id", ds.ID.String()),
		slog.String("name", name),
	)

	return ds, nil
}

// UpdateDataset renames a dataset or changes its description (admin only).
func (s *Service) UpdateDataset(ctx context.Context, input UpdateDatasetInput) (*domain.Dataset, error) {
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

	params := domain.DatasetUpdateParams{}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}

	var updated *domain.Dataset
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.datasets.GetByID(txCtx, input.DatasetID)
		if getErr != nil {
			return fmt.Errorf("get dataset: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.datasets.Update(txCtx, input.DatasetID, params)
		if updateErr != nil {
			return fmt.Errorf("update dataset: %w", updateErr)
		}

		changes := buildDatasetChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDataset,
			EntityID:   &input.DatasetID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dataset updated", slog.String("dataset_id", input.DatasetID.String()))

	return updated, nil
}

// DeleteDataset removes a dataset with its tags, sentences, permissions and
// labels (admin only).
func (s *Service) DeleteDataset(ctx context.Context, datasetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.datasets.GetByID(txCtx, datasetID)
		if getErr != nil {
			return fmt.Errorf("get dataset: %w", getErr)
		}

		if err := s.datasets.Delete(txCtx, datasetID); err != nil {
			return fmt.Errorf("delete dataset: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDataset,
			EntityID:   &datasetID,
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

	s.log.InfoContext(ctx, "dataset deleted", slog.String("dataset_id", datasetID.String()))

	return nil
}

// buildDatasetChanges returns only changed fields for audit.
func buildDatasetChanges(old, updated *domain.Dataset) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	return changes
}
