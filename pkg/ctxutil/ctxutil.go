package ctxutil

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID    primitive.ObjectID
	Name  string
	Email string
}

// WithIdentity stores the authenticated caller in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the authenticated caller from the context.
// Returns false if the value is missing, has a zero ID, or is of the wrong type.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.ID.IsZero() {
		return Identity{}, false
	}
	return id, true
}

// UserIDFromCtx extracts the authenticated caller's ID from the context.
func UserIDFromCtx(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := IdentityFromCtx(ctx)
	return id.ID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
