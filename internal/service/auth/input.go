package auth

import "github.com/Sweetdevil144/feedback-platform/internal/domain"

// RegisterInput holds parameters for registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Validate checks every field and reports all failures in the order
// name, email, password.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := domain.CheckUserName(i.Name); !ok {
		errs = append(errs, fe)
	}
	if fe, ok := domain.CheckUserEmail(i.Email); !ok {
		errs = append(errs, fe)
	}
	if fe, ok := domain.CheckUserPassword(i.Password); !ok {
		errs = append(errs, fe)
	}

	return domain.NewValidationErrors(errs)
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	return domain.NewValidationErrors(errs)
}
