package auth

import "github.com/Sweetdevil144/feedback-platform/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}
