package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles the health, liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Health handles GET /health. Returns {"ok":true} when every check passes,
// otherwise 500 with {"ok":false,"error":...} naming the failed checks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	failures := failedChecks(h.registry.CheckAll(r.Context()))
	if len(failures) > 0 {
		writeJSON(w, r, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": strings.Join(failures, "; "),
		})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"ok": true})
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if len(failedChecks(results)) > 0 {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// failedChecks returns "name: error" for every failed check, sorted by name.
func failedChecks(results map[string]error) []string {
	var out []string
	for name, err := range results {
		if err != nil {
			out = append(out, name+": "+err.Error())
		}
	}
	sort.Strings(out)
	return out
}
