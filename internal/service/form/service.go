// Package form implements survey creation, public response submission and
// the owner-facing reports built from stored responses.
package form

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/pkg/ctxutil"
)

// formRepo defines the form repository interface needed by form service.
type formRepo interface {
	Create(ctx context.Context, f domain.Form) (*domain.Form, error)
	ListByOwner(ctx context.Context, ownerID domain.ID) ([]domain.Form, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Form, error)
	LockByPublicID(ctx context.Context, publicID string) (*domain.Form, error)
	AppendResponse(ctx context.Context, formID domain.ID, resp domain.Response) error
	ListResponses(ctx context.Context, formID domain.ID) ([]domain.Response, error)
}

// txManager defines the transaction manager interface needed by form service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements form operations.
type Service struct {
	log   *slog.Logger
	forms formRepo
	tx    txManager
}

// NewService creates a new form service instance.
func NewService(logger *slog.Logger, forms formRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "form"),
		forms: forms,
		tx:    tx,
	}
}

// Submission rule failures, checked in this order.
var (
	ErrIncompleteAnswers = domain.NewError(domain.ErrValidation, "All questions must be answered")
	ErrAnswerOrder       = domain.NewError(domain.ErrValidation, "Invalid answer format")
	ErrInvalidChoice     = domain.NewError(domain.ErrValidation, "Invalid answer for multiple-choice question")
)

// Owner-only access failures.
var (
	ErrNotOwnerResponses = domain.NewError(domain.ErrForbidden, "Not authorized to view responses for this form")
	ErrNotOwnerExport    = domain.NewError(domain.ErrForbidden, "Not authorized to export responses for this form")
)

// loadOwned fetches the form and checks that the caller created it before
// any response data is read.
func (s *Service) loadOwned(ctx context.Context, publicID string, denied error) (*domain.Form, error) {
	if err := domain.ValidatePublicID(publicID); err != nil {
		return nil, err
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := s.forms.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, notFound(err)
	}

	if !f.IsOwnedBy(callerID) {
		return nil, denied
	}
	return f, nil
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrFormNotFound
	}
	return err
}
