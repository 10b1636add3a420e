package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/internal/service/user"
)

type userService interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)
	Update(ctx context.Context, id domain.ID, input user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id domain.ID) error
}

// UserHandler serves the account endpoints under /auth/{id}.
type UserHandler struct {
	svc userService
	responder
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger, production bool) *UserHandler {
	return &UserHandler{
		svc:       svc,
		responder: responder{log: logger.With("handler", "user"), production: production},
	}
}

// Get handles GET /auth/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
}

// Update handles PUT /auth/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Update(r.Context(), id, user.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
}

// Delete handles DELETE /auth/{id}. The user's forms and their responses
// are removed with the account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
