package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/pkg/ctxutil"
)

// Create stores a new form owned by the caller under a fresh public id.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Form, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	f, err := s.forms.Create(ctx, domain.Form{
		ID:        domain.NewID(),
		PublicID:  domain.NewPublicID(),
		CreatedBy: callerID,
		Title:     strings.TrimSpace(input.Title),
		Questions: input.questions(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("form.Create: %w", err)
	}

	s.log.InfoContext(ctx, "form created",
		slog.String("user_id", callerID.Hex()),
		slog.String("form_id", f.PublicID),
		slog.Int("questions", len(f.Questions)))

	return f, nil
}

// List returns the caller's forms, newest first, without responses.
func (s *Service) List(ctx context.Context) ([]domain.Form, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	forms, err := s.forms.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("form.List: %w", err)
	}
	return forms, nil
}

// Get returns the public view of a form: its questions and response count.
func (s *Service) Get(ctx context.Context, publicID string) (*domain.Form, error) {
	if err := domain.ValidatePublicID(publicID); err != nil {
		return nil, err
	}

	f, err := s.forms.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("form.Get: %w", notFound(err))
	}
	return f, nil
}

// Submit appends one anonymous response. The form row stays locked from
// the moment it is read until the response is stored, so validation and
// append are atomic per form. Nothing is stored when a rule fails.
func (s *Service) Submit(ctx context.Context, publicID string, input SubmitInput) error {
	if err := domain.ValidatePublicID(publicID); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	var formID domain.ID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := s.forms.LockByPublicID(txCtx, publicID)
		if err != nil {
			return notFound(err)
		}

		answers, err := input.match(f.Questions)
		if err != nil {
			return err
		}

		formID = f.ID
		return s.forms.AppendResponse(txCtx, f.ID, domain.Response{
			Answers:     answers,
			SubmittedAt: time.Now().UTC().Truncate(time.Millisecond),
		})
	})
	if err != nil {
		return fmt.Errorf("form.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "response submitted",
		slog.String("form_id", publicID),
		slog.String("form_key", formID.Hex()))

	return nil
}

// Responses returns the raw responses in submission order. Owner only.
func (s *Service) Responses(ctx context.Context, publicID string) ([]domain.Response, error) {
	f, err := s.loadOwned(ctx, publicID, ErrNotOwnerResponses)
	if err != nil {
		return nil, fmt.Errorf("form.Responses: %w", err)
	}

	responses, err := s.forms.ListResponses(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("form.Responses: %w", err)
	}
	return responses, nil
}
