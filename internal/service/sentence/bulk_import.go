package sentence

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
	"github.com/heartmarshall/tagger-backend/pkg/ctxutil"
)

// BulkImport reads sentences from an uploaded CSV document and inserts them
// into the dataset in a single transaction (admin only). A document without
// any usable line succeeds with zero imported sentences.
func (s *Service) BulkImport(ctx context.Context, datasetID uuid.UUID, r io.Reader) (*domain.ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.datasets.GetByID(ctx, datasetID); err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	parsed, err := ParseSentences(r)
	if err != nil {
		return nil, domain.NewValidationError("file", "unreadable document")
	}

	if s.cfg.MaxSentences > 0 && len(parsed.Bodies) > s.cfg.MaxSentences {
		return nil, domain.NewValidationError("file", fmt.Sprintf("too many sentences (max %d)", s.cfg.MaxSentences))
	}

	result := &domain.ImportResult{Skipped: parsed.Skipped}
	if len(parsed.Bodies) == 0 {
		return result, nil
	}

	now := time.Now()
	batch := make([]domain.Sentence, 0, len(parsed.Bodies))
	for _, body := range parsed.Bodies {
		batch = append(batch, domain.Sentence{
			ID:        domain.NewID(),
			DatasetID: &datasetID,
			Body:      body,
			CreatedAt: now,
		})
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inserted, insertErr := s.sentences.BulkInsert(txCtx, batch)
		if insertErr != nil {
			return fmt.Errorf("bulk insert sentences: %w", insertErr)
		}
		result.Imported = inserted

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDataset,
			EntityID:   &datasetID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"sentences_imported": map[string]any{"new": inserted},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SentencesImported(result.Imported)

	s.log.InfoContext(ctx, "sentences imported",
		slog.String("dataset_id", datasetID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
