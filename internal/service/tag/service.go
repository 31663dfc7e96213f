package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	ListByDataset(ctx context.Context, datasetID uuid.UUID, activeOnly bool) ([]domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type datasetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
}

type accessGuard interface {
	RequireAccess(ctx context.Context, datasetID uuid.UUID) (*domain.Operator, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the tag vocabulary of datasets.
type Service struct {
	tags     tagRepo
	datasets datasetRepo
	access   accessGuard
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Tag service.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	datasets datasetRepo,
	access accessGuard,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		tags:     tags,
		datasets: datasets,
		access:   access,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "tag"),
	}
}
