package dataset

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type datasetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	List(ctx context.Context) ([]domain.Dataset, error)
	Create(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DatasetUpdateParams) (*domain.Dataset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides dataset administration.
type Service struct {
	datasets datasetRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Dataset service.
func NewService(log *slog.Logger, datasets datasetRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		datasets: datasets,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "dataset"),
	}
}
