package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// tokenIssuer defines the JWT interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	AccessTTL() time.Duration
}

// passwordChecker compares a stored hash with a plaintext password.
type passwordChecker func(hash, password string) error

// Service implements login.
type Service struct {
	log           *slog.Logger
	users         userRepo
	jwt           tokenIssuer
	checkPassword passwordChecker
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt tokenIssuer, checkPassword passwordChecker) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		jwt:           jwt,
		checkPassword: checkPassword,
	}
}
