package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// ListActiveTags returns the active tags of a dataset the caller may access,
// in creation order.
func (s *Service) ListActiveTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error) {
	if _, err := s.access.RequireAccess(ctx, datasetID); err != nil {
		return nil, err
	}

	tags, err := s.tags.ListByDataset(ctx, datasetID, true)
	if err != nil {
		return nil, fmt.Errorf("list active tags: %w", err)
	}

	return tags, nil
}

// ListAllTags returns every tag of a dataset including inactive ones (admin only).
func (s *Service) ListAllTags(ctx context.Context, datasetID uuid.UUID) ([]domain.Tag, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.datasets.GetByID(ctx, datasetID); err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	tags, err := s.tags.ListByDataset(ctx, datasetID, false)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}
