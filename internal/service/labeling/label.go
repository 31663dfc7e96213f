package labeling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// Label attaches a tag to a sentence for the calling operator.
//
// Checks run in a fixed order: both entities must exist, the tag must
// belong to the sentence's dataset, the caller must be an operator and
// the operator must be permitted on that dataset. Repeated labels of the
// same pair are stored as separate records.
func (s *Service) Label(ctx context.Context, input LabelInput) (*domain.LabeledSentence, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.LabeledSentence
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tag, err := s.tags.GetByID(txCtx, input.TagID)
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}

		sentence, err := s.sentences.GetByID(txCtx, input.SentenceID)
		if err != nil {
			return fmt.Errorf("get sentence: %w", err)
		}

		if !sentence.BelongsTo(tag.DatasetID) {
			return fmt.Errorf("tag %s does not belong to the dataset of sentence %s: %w",
				tag.ID, sentence.ID, domain.ErrConsistency)
		}

		op, err := s.access.RequireAccess(txCtx, tag.DatasetID)
		if err != nil {
			return err
		}

		created, err = s.labels.Create(txCtx, &domain.LabeledSentence{
			ID:         domain.NewID(),
			SentenceID: sentence.ID,
			TagID:      tag.ID,
			OperatorID: op.ID,
			CreatedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("create label: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.LabelCreated()

	s.log.InfoContext(ctx, "sentence labeled",
		slog.String("label_id", created.ID.String()),
		slog.String("sentence_id", created.SentenceID.String()),
		slog.String("tag_id", created.TagID.String()),
		slog.String("operator_id", created.OperatorID.String()),
	)

	return created, nil
}
