package permission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

type permissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Permission, error)
	List(ctx context.Context, filter domain.PermissionFilter) ([]domain.Permission, error)
	Create(ctx context.Context, p *domain.Permission) (*domain.Permission, error)
	Update(ctx context.Context, id, datasetID, operatorID uuid.UUID) (*domain.Permission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type datasetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
}

type operatorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages dataset permissions of operators.
type Service struct {
	permissions permissionRepo
	datasets    datasetRepo
	operators   operatorRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Permission service.
func NewService(
	log *slog.Logger,
	permissions permissionRepo,
	datasets datasetRepo,
	operators operatorRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		permissions: permissions,
		datasets:    datasets,
		operators:   operators,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "permission"),
	}
}
