package auth

import (
	"context"
	"log/slog"

	"github.com/Sweetdevil144/feedback-platform/internal/auth"
	"github.com/Sweetdevil144/feedback-platform/internal/config"
	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)
	GetCredentials(ctx context.Context, email string) (*domain.User, string, error)
	Create(ctx context.Context, user domain.User, passwordHash string) (*domain.User, error)
}

// tokenManager defines the session token interface needed by auth service.
type tokenManager interface {
	Issue(user domain.User) (string, error)
	Parse(token string) (*auth.Claims, error)
}

// Service implements registration, login and token verification.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}

// ErrUserExists is returned when registering an email that is already taken.
var ErrUserExists = domain.NewError(domain.ErrAlreadyExists, "User already exists")

// ErrInvalidCredentials is returned for any failed login; it does not say
// whether the email or the password was wrong.
var ErrInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "Invalid credentials")
