package handlers

import (
	"net/http"
	"strconv"

	"github.com/finsight/server/internal/news"
)

// NewsHandler serves the fixed news seed
type NewsHandler struct {
	items []news.Item
}

// NewNewsHandler creates a news handler over the given seed
func NewNewsHandler(items []news.Item) *NewsHandler {
	return &NewsHandler{items: items}
}

// HandleNews handles GET /news. An absent or malformed limit returns the full
// list; a numeric limit is clamped to [1, len].
func (h *NewsHandler) HandleNews(w http.ResponseWriter, r *http.Request) {
	limitParam := r.URL.Query().Get("limit")
	if limitParam == "" {
		respondJSON(w, http.StatusOK, h.items)
		return
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		respondJSON(w, http.StatusOK, h.items)
		return
	}

	if limit < 1 {
		limit = 1
	}
	if limit > len(h.items) {
		limit = len(h.items)
	}
	respondJSON(w, http.StatusOK, h.items[:limit])
}
