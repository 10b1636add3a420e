package domain

import (
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID identifies users and forms internally: 12 bytes rendered as a
// 24-character hexadecimal string.
type ID = primitive.ObjectID

// NilID is the zero ID.
var NilID = primitive.NilObjectID

// NewID generates a fresh internal identifier.
func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID parses a 24-character hexadecimal identifier.
func ParseID(s string) (ID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return NilID, NewValidationError("id", "Invalid ID format")
	}
	return id, nil
}

// NewPublicID generates the opaque identifier under which a form is shared.
func NewPublicID() string {
	return uuid.NewString()
}

// ValidatePublicID accepts any non-blank string; unknown ids resolve to
// not-found at lookup time.
func ValidatePublicID(s string) error {
	if strings.TrimSpace(s) == "" {
		return NewValidationError("formId", "Form ID is required")
	}
	return nil
}
