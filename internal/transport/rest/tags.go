package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/voicejournal/backend/internal/domain"
)

// tagLister defines the minimal interface needed by TagHandler.
type tagLister interface {
	ListTags(ctx context.Context) ([]domain.TagCount, error)
}

// TagHandler serves the tag listing endpoint.
type TagHandler struct {
	svc tagLister
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagLister, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tags")}
}

type tagCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.ListTags(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]tagCountResponse, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, tagCountResponse{Name: c.Name, Count: c.Count})
	}

	writeJSON(w, http.StatusOK, resp)
}
