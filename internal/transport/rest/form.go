package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/internal/service/form"
)

type formService interface {
	Create(ctx context.Context, input form.CreateInput) (*domain.Form, error)
	List(ctx context.Context) ([]domain.Form, error)
	Get(ctx context.Context, publicID string) (*domain.Form, error)
	Submit(ctx context.Context, publicID string, input form.SubmitInput) error
	Responses(ctx context.Context, publicID string) ([]domain.Response, error)
	Summary(ctx context.Context, publicID string) (*form.Summary, error)
	Export(ctx context.Context, publicID string, input form.ExportInput) (*form.Export, error)
}

// FormHandler serves form authoring, public submission and reporting.
type FormHandler struct {
	svc formService
	responder
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc formService, logger *slog.Logger, production bool) *FormHandler {
	return &FormHandler{
		svc:       svc,
		responder: responder{log: logger.With("handler", "form"), production: production},
	}
}

// Create handles POST /forms.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFormRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]ownedFormResponse{"form": toOwnedFormResponse(f)})
}

// List handles GET /forms.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]ownedFormResponse, len(forms))
	for i := range forms {
		out[i] = toOwnedFormResponse(&forms[i])
	}
	writeJSON(w, http.StatusOK, map[string][]ownedFormResponse{"forms": out})
}

// Get handles GET /forms/{formId}.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Get(r.Context(), r.PathValue("formId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]publicFormResponse{"form": toPublicFormResponse(f)})
}

// Submit handles POST /forms/{formId}/responses.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Submit(r.Context(), r.PathValue("formId"), req.toInput()); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Response submitted successfully"})
}

// Responses handles GET /forms/{formId}/responses.
func (h *FormHandler) Responses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.svc.Responses(r.Context(), r.PathValue("formId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]responseResponse{"responses": toResponseResponses(responses)})
}

// Summary handles GET /forms/{formId}/summary.
func (h *FormHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), r.PathValue("formId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Export handles GET /forms/{formId}/export. ?filename=title names the
// attachment after the form title.
func (h *FormHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.svc.Export(r.Context(), r.PathValue("formId"), form.ExportInput{
		FilenameFromTitle: r.URL.Query().Get("filename") == "title",
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": export.Filename,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data) //nolint:errcheck
}
