package labeling

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// ListUnlabeled returns sentences of every dataset the caller is permitted
// on that have not been labeled by anyone yet, in insertion order.
func (s *Service) ListUnlabeled(ctx context.Context) ([]domain.Sentence, error) {
	op, err := s.access.CurrentOperator(ctx)
	if err != nil {
		return nil, err
	}

	datasetIDs, err := s.access.PermittedDatasets(ctx, op.ID)
	if err != nil {
		return nil, err
	}
	if len(datasetIDs) == 0 {
		return []domain.Sentence{}, nil
	}

	sentences, err := s.sentences.ListUnlabeledInDatasets(ctx, datasetIDs)
	if err != nil {
		return nil, fmt.Errorf("list unlabeled sentences: %w", err)
	}

	return sentences, nil
}

// ListByTag returns the labeled sentences of a dataset carrying the given tag.
func (s *Service) ListByTag(ctx context.Context, datasetID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error) {
	if _, err := s.access.RequireAccess(ctx, datasetID); err != nil {
		return nil, err
	}

	labels, err := s.labels.ListByDatasetAndTag(ctx, datasetID, tagID)
	if err != nil {
		return nil, fmt.Errorf("list labels by tag: %w", err)
	}

	return labels, nil
}
