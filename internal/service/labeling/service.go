// Package labeling attaches tags to sentences on behalf of operators.
package labeling

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
}

type sentenceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	ListUnlabeledInDatasets(ctx context.Context, datasetIDs []uuid.UUID) ([]domain.Sentence, error)
}

type labelRepo interface {
	Create(ctx context.Context, ls *domain.LabeledSentence) (*domain.LabeledSentence, error)
	ListByDatasetAndTag(ctx context.Context, datasetID, tagID uuid.UUID) ([]domain.LabeledSentenceView, error)
}

type accessGuard interface {
	CurrentOperator(ctx context.Context) (*domain.Operator, error)
	RequireAccess(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error)
	PermittedDatasets(ctx context.Context, operatorID uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type labelRecorder interface {
	LabelCreated()
}

// Service implements the labeling workflow.
type Service struct {
	tags      tagRepo
	sentences sentenceRepo
	labels    labelRepo
	access    accessGuard
	tx        txManager
	metrics   labelRecorder
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new Labeling service.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	sentences sentenceRepo,
	labels labelRepo,
	access accessGuard,
	tx txManager,
	metrics labelRecorder,
) *Service {
	return &Service{
		tags:      tags,
		sentences: sentences,
		labels:    labels,
		access:    access,
		tx:        tx,
		metrics:   metrics,
		now:       time.Now,
		log:       log.With("service", "labeling"),
	}
}
