package api

import (
	"bytes"
	"net/http"
)

// DashboardHandler serves the full dashboard page.
type DashboardHandler struct {
	deps Dependencies
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// HandleDashboard handles GET / and GET /dashboard.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var buf bytes.Buffer
	if err := h.deps.RenderPage(r.Context(), &buf); err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", ErrRender)
		return
	}
	writeHTML(w, buf.Bytes())
}
