package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

type storePinger interface {
	Ping(ctx context.Context) error
}

type schemaReporter interface {
	SchemaVersions(ctx context.Context) (current, target int64, err error)
}

// HealthHandler answers orchestration health checks. Readiness means the
// store answers and every embedded migration is applied, so forms and
// responses can be served.
type HealthHandler struct {
	store   storePinger
	schema  schemaReporter
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storePinger, schema schemaReporter, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		schema:  schema,
		version: version,
		log:     logger.With("handler", "health"),
	}
}

type checkResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type healthReport struct {
	Status    string         `json:"status"`
	Version   string         `json:"version,omitempty"`
	Database  databaseReport `json:"database"`
	Schema    schemaReport   `json:"schema"`
	CheckedAt time.Time      `json:"checkedAt"`
}

type databaseReport struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type schemaReport struct {
	Status  string `json:"status"`
	Current int64  `json:"current"`
	Target  int64  `json:"target"`
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkResponse{Status: "ok"})
}

// Ready returns 503 while the database is unreachable or migrations are
// pending.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "readiness: database unreachable", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, checkResponse{Status: "unavailable", Reason: "database unreachable"})
		return
	}

	current, target, err := h.schema.SchemaVersions(ctx)
	if err != nil {
		h.log.WarnContext(ctx, "readiness: schema check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, checkResponse{Status: "unavailable", Reason: "schema unknown"})
		return
	}
	if current < target {
		writeJSON(w, http.StatusServiceUnavailable, checkResponse{Status: "unavailable", Reason: "migrations pending"})
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{Status: "ok"})
}

// Health reports database latency, schema versions and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	report := healthReport{Status: "ok", Version: h.version}

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		report.Database.Status = "down"
		report.Status = "down"
	} else {
		report.Database = databaseReport{Status: "ok", Latency: time.Since(start).String()}
	}

	current, target, err := h.schema.SchemaVersions(ctx)
	switch {
	case err != nil:
		report.Schema.Status = "unknown"
		report.Status = "down"
	case current < target:
		report.Schema = schemaReport{Status: "pending", Current: current, Target: target}
		report.Status = "degraded"
	default:
		report.Schema = schemaReport{Status: "ok", Current: current, Target: target}
	}
	if report.Database.Status == "down" {
		report.Status = "down"
	}
	report.CheckedAt = time.Now().UTC()

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
