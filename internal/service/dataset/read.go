package dataset

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// GetDataset returns a dataset by id (admin only).
func (s *Service) GetDataset(ctx context.Context, datasetID uuid.UUID) (*domain.Dataset, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	ds, err := s.datasets.GetByID(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}
	return ds, nil
}

// ListDatasets returns all datasets in creation order (admin only).
func (s *Service) ListDatasets(ctx context.Context) ([]domain.Dataset, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	list, err := s.datasets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return list, nil
}
