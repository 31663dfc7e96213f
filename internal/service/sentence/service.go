package sentence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type sentenceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.Sentence, error)
	Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error)
	BulkInsert(ctx context.Context, sentences []domain.Sentence) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type datasetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type importRecorder interface {
	SentencesImported(n int)
}

// Config holds import limits.
type Config struct {
	MaxSentences int
}

// Service manages the sentences of datasets.
type Service struct {
	sentences sentenceRepo
	datasets  datasetRepo
	audit     auditLogger
	tx        txManager
	metrics   importRecorder
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Sentence service.
func NewService(
	log *slog.Logger,
	sentences sentenceRepo,
	datasets datasetRepo,
	audit auditLogger,
	tx txManager,
	metrics importRecorder,
	cfg Config,
) *Service {
	return &Service{
		sentences: sentences,
		datasets:  datasets,
		audit:     audit,
		tx:        tx,
		metrics:   metrics,
		cfg:       cfg,
		log:       log.With("service", "sentence"),
	}
}
