package rest

import (
	"net/http"

	"github.com/Sweetdevil144/feedback-platform/internal/transport/middleware"
)

// APIPrefix is the second mount point of every route.
const APIPrefix = "/api"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Form   *FormHandler
	Health *HealthHandler
}

// Limits are the per-route rate limits. A nil entry disables limiting for
// that group.
type Limits struct {
	Auth   middleware.Middleware
	Submit middleware.Middleware
}

// NewRouter registers all routes on a ServeMux and mounts the same routes
// again under /api. Protected routes are wrapped in RequireAuth; the
// caller's identity must already be resolved by middleware.Auth.
func NewRouter(h Handlers, limits Limits) *http.ServeMux {
	routes := http.NewServeMux()

	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}
	limited := func(mw middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return middleware.Chain(mw)(fn)
	}

	// Health
	routes.HandleFunc("GET /live", h.Health.Live)
	routes.HandleFunc("GET /ready", h.Health.Ready)
	routes.HandleFunc("GET /health", h.Health.Health)

	// Auth and accounts
	routes.Handle("POST /auth/register", limited(limits.Auth, h.Auth.Register))
	routes.Handle("POST /auth/login", limited(limits.Auth, h.Auth.Login))
	routes.Handle("GET /auth/me/profile", protected(h.Auth.Profile))
	routes.Handle("GET /auth/{id}", protected(h.User.Get))
	routes.Handle("PUT /auth/{id}", protected(h.User.Update))
	routes.Handle("DELETE /auth/{id}", protected(h.User.Delete))

	// Forms (owner)
	routes.Handle("POST /forms", protected(h.Form.Create))
	routes.Handle("GET /forms", protected(h.Form.List))
	routes.Handle("GET /forms/{formId}/responses", protected(h.Form.Responses))
	routes.Handle("GET /forms/{formId}/export", protected(h.Form.Export))

	// Forms (public)
	routes.HandleFunc("GET /forms/{formId}", h.Form.Get)
	routes.Handle("POST /forms/{formId}/responses", limited(limits.Submit, h.Form.Submit))
	routes.HandleFunc("GET /forms/{formId}/summary", h.Form.Summary)

	routes.HandleFunc("/", root)

	mux := http.NewServeMux()
	mux.Handle("/", routes)
	mux.Handle(APIPrefix+"/", http.StripPrefix(APIPrefix, routes))
	return mux
}

// root answers GET / and turns every unmatched path into a JSON 404.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "API is running"})
		return
	}
	writeError(w, http.StatusNotFound, "Route not found")
}
