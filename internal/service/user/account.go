package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/pkg/ctxutil"
)

// authorize returns ErrUnauthorized for anonymous callers and ErrNotSelf
// when the caller is not the target user.
func authorize(ctx context.Context, target domain.ID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID != target {
		return ErrNotSelf
	}
	return nil
}

// GetByID returns the account with the given id. Callers may only read
// their own account.
func (s *Service) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if err := authorize(ctx, id); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: %w", notFound(err))
	}

	return user, nil
}

// Update edits the caller's own account. A new password is re-hashed and a
// new email is normalized before storage.
func (s *Service) Update(ctx context.Context, id domain.ID, input UpdateInput) (*domain.User, error) {
	if err := authorize(ctx, id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var upd domain.UserUpdate
	if input.Name != "" {
		name := strings.TrimSpace(input.Name)
		upd.Name = &name
	}
	if input.Email != "" {
		email := domain.NormalizeEmail(input.Email)
		upd.Email = &email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("password", "Password must be at most 72 bytes long")
		}
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.Update: %w", ErrEmailTaken)
		}
		return nil, fmt.Errorf("user.Update: %w", notFound(err))
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", id.Hex()),
		slog.Bool("password_changed", upd.PasswordHash != nil))

	return user, nil
}

// Delete removes the caller's own account together with its forms.
func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if err := authorize(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", notFound(err))
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.Hex()))
	return nil
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
