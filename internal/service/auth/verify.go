package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/pkg/ctxutil"
)

// VerifyToken resolves a bearer token to its stored user. It fails closed:
// a bad signature, an expired or malformed token, or an id that no longer
// resolves to a user all return domain.ErrUnauthorized. Only storage
// failures come back as other errors.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("reason", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	id, err := domain.ParseID(claims.UserID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.VerifyToken: %w", err)
	}

	return user, nil
}

// GetProfile returns the authenticated caller's stored record.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.GetProfile: %w", domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("auth.GetProfile: %w", err)
	}

	return user, nil
}
