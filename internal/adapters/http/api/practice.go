package api

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	repository "github.com/okian/practicedash/internal/adapters/repository"
)

// PracticeHandler serves a single practice card as an HTML fragment.
type PracticeHandler struct {
	deps Dependencies
}

// NewPracticeHandler creates a new practice handler.
func NewPracticeHandler(deps Dependencies) *PracticeHandler {
	return &PracticeHandler{deps: deps}
}

// HandleGetPractice handles GET /practices/{id} requests.
func (h *PracticeHandler) HandleGetPractice(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	// Extract path parameter after /practices/
	id := strings.TrimPrefix(r.URL.Path, "/practices/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.deps.RenderCard(r.Context(), id, &buf); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "render_failed", ErrRender)
		return
	}
	writeHTML(w, buf.Bytes())
}
