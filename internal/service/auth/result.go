package auth

import (
	"time"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

// LoginResult holds the issued access token and the authenticated user.
type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}
