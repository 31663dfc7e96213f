package sentence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// ListSentences returns all sentences of a dataset in insertion order (admin only).
func (s *Service) ListSentences(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.datasets.GetByID(ctx, datasetID); err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	sentences, err := s.sentences.ListByDataset(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}

	return sentences, nil
}

// CreateSentence adds a single sentence to a dataset (admin only).
func (s *Service) CreateSentence(ctx context.Context, input CreateSentenceInput) (*domain.Sentence, error) {
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

	body := strings.TrimSpace(input.Body)
	datasetID := input.DatasetID

	var created *domain.Sentence
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.datasets.GetByID(txCtx, datasetID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("dataset_id", "dataset not found")
			}
			return fmt.Errorf("get dataset: %w", err)
		}

		var createErr error
		created, createErr = s.sentences.Create(txCtx, &domain.Sentence{
			ID:        domain.NewID(),
			DatasetID: &datasetID,
			Body:      body,
			CreatedAt: time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create sentence: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSentence,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"dataset_id": map[string]any{"new": datasetID.String()},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sentence created",
		slog.String("dataset_id", datasetID.String()),
		slog.String("sentence_id", created.ID.String()),
	)

	return created, nil
}

// DeleteSentence removes a sentence and its labels (admin only).
func (s *Service) DeleteSentence(ctx context.Context, sentenceID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sentences.Delete(txCtx, sentenceID); err != nil {
			return fmt.Errorf("delete sentence: %w", err)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSentence,
			EntityID:   &sentenceID,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sentence deleted", slog.String("sentence_id", sentenceID.String()))

	return nil
}
