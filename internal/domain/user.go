package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// User represents a registered form owner. The password hash never leaves
// the credential store except for the login comparison.
type User struct {
	ID        ID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries the optional fields of a profile edit. Nil means
// "leave unchanged"; PasswordHash is already hashed.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

// Field rules applied at registration and on profile updates.
const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

// CheckUserName requires at least MinNameLength characters after trimming.
func CheckUserName(name string) (FieldError, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return FieldError{Field: "name", Message: "Name must be at least 2 characters long"}, false
	}
	if !IsStorableText(name) {
		return FieldError{Field: "name", Message: "Name contains invalid characters"}, false
	}
	return FieldError{}, true
}

// CheckUserEmail only requires an "@" and storable text; deliverability is
// not checked.
func CheckUserEmail(email string) (FieldError, bool) {
	if !strings.Contains(email, "@") || !IsStorableText(email) {
		return FieldError{Field: "email", Message: "Valid email is required"}, false
	}
	return FieldError{}, true
}

// CheckUserPassword requires at least MinPasswordLength characters.
func CheckUserPassword(password string) (FieldError, bool) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return FieldError{Field: "password", Message: "Password must be at least 6 characters long"}, false
	}
	return FieldError{}, true
}
