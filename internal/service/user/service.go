package user

import (
	"context"
	"log/slog"

	"github.com/Sweetdevil144/feedback-platform/internal/config"
	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)
	Update(ctx context.Context, id domain.ID, upd domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id domain.ID) error
}

// Service implements account read, update and delete. Every operation is
// limited to the caller's own account.
type Service struct {
	log   *slog.Logger
	users userRepo
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		cfg:   cfg,
	}
}

// ErrNotSelf is returned when the caller targets another user's account.
var ErrNotSelf = domain.NewError(domain.ErrForbidden, "Not authorized to access this user")

// ErrEmailTaken is returned when an update would duplicate another account's email.
var ErrEmailTaken = domain.NewError(domain.ErrAlreadyExists, "Email already in use")
