package http

import (
	"errors"
	"log/slog"
	"net/http"

	"finmind/internal/core"
)

// handleOverview returns the dashboard aggregates. Results are cached
// per calendar day for a short TTL; every mutation purges the cache.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	today := s.now()
	cacheKey := "overview:" + today.UTC().Format(core.DateLayout)

	if cached, ok := s.overviewCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	items, err := s.items.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list items for overview", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	overview, err := core.BuildOverview(items, today)
	if err != nil {
		// An invalid due date is reported, never hidden behind a zeroed
		// dashboard.
		var invalid *core.InvalidDateError
		if errors.As(err, &invalid) {
			slog.ErrorContext(r.Context(), "Overview failed on invalid due date",
				"item_id", invalid.ItemID,
				"item_name", invalid.ItemName,
				"due_date", invalid.Raw)
			writeError(w, http.StatusInternalServerError, invalid.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to build overview")
		return
	}

	s.overviewCache.Set(cacheKey, overview)
	writeJSON(w, http.StatusOK, overview)
}
