package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/pkg/ctxutil"
)

// Messages returned to callers that reach a protected route without a
// usable identity. Neither says why a presented token was rejected.
const (
	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid or expired token"
)

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves a bearer token to the stored user and attaches its identity
// to the request context. It never rejects: a missing or unusable token
// leaves the request anonymous and RequireAuth decides what to do with it.
func Auth(verifier tokenVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			user, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "bearer token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), ctxutil.Identity{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that Auth left anonymous with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		msg := msgNoToken
		if extractBearerToken(r) != "" {
			msg = msgInvalidToken
		}
		writeError(w, http.StatusUnauthorized, msg)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
