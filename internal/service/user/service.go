package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// operatorRepo defines the operator repository interface needed by user service.
type operatorRepo interface {
	List(ctx context.Context) ([]domain.Operator, error)
	Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
}

// auditLogger defines the audit interface needed by user service.
type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher turns a plaintext password into a stored hash.
type passwordHasher func(password string) (string, error)

// Service implements user accounts and operator provisioning.
type Service struct {
	log          *slog.Logger
	users        userRepo
	operators    operatorRepo
	audit        auditLogger
	tx           txManager
	hashPassword passwordHasher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	operators operatorRepo,
	audit auditLogger,
	tx txManager,
	hashPassword passwordHasher,
) *Service {
	return &Service{
		log:          logger.With("service", "user"),
		users:        users,
		operators:    operators,
		audit:        audit,
		tx:           tx,
		hashPassword: hashPassword,
	}
}
