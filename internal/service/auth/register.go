package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// Register creates a new user with email + password authentication and
// issues a session token. Returns ErrUserExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.NewValidationError("password", "Password must be at most 72 bytes long")
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by the unique index on users.email.
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, domain.User{
		ID:        domain.NewID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     domain.NormalizeEmail(input.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", ErrUserExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.Hex()))

	return &AuthResult{Token: token, User: user}, nil
}
