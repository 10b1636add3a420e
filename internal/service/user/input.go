package user

import "github.com/Sweetdevil144/feedback-platform/internal/domain"

// UpdateInput holds the fields of an account edit. Empty strings mean
// "leave unchanged".
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// Validate applies the registration rule of every supplied field.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != "" {
		if fe, ok := domain.CheckUserName(i.Name); !ok {
			errs = append(errs, fe)
		}
	}
	if i.Email != "" {
		if fe, ok := domain.CheckUserEmail(i.Email); !ok {
			errs = append(errs, fe)
		}
	}
	if i.Password != "" {
		if fe, ok := domain.CheckUserPassword(i.Password); !ok {
			errs = append(errs, fe)
		}
	}

	return domain.NewValidationErrors(errs)
}
