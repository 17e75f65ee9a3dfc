package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"finmind/internal/importer"
	"finmind/internal/store"
)

const maxBodyBytes = 1 << 20 // 1MB

// handleItems serves GET (list) and POST (create) on /api/items.
func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listItems(w, r)
	case http.MethodPost:
		s.createItem(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	// Single-item create goes through the same admission rules as bulk
	// import; only the batch-vs-object distinction differs.
	items, err := importer.Parse(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if len(items) != 1 {
		writeError(w, http.StatusUnprocessableEntity, "expected a single item object")
		return
	}

	item := items[0]
	if err := s.items.Add(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "item id already exists")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to save item", "error", err, "item_id", item.ID)
		writeError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	s.overviewCache.Purge()

	slog.InfoContext(r.Context(), "Item created",
		"item_id", item.ID,
		"type", item.Type,
		"name", item.Name)

	writeJSON(w, http.StatusCreated, item)
}

// handleImport accepts one item object or an array of them; any invalid
// record rejects the whole payload.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	items, err := importer.Parse(body)
	if err != nil {
		var verr *importer.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusUnprocessableEntity, verr.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid import payload")
		return
	}

	if err := s.items.AddMany(r.Context(), items); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to import items", "error", err, "count", len(items))
		writeError(w, http.StatusInternalServerError, "failed to import items")
		return
	}

	s.overviewCache.Purge()

	slog.InfoContext(r.Context(), "Items imported", "count", len(items))
	writeJSON(w, http.StatusCreated, map[string]any{"imported": len(items), "items": items})
}

// handleDeleteItem removes one item by the id in the path. Deleting an
// unknown id succeeds without effect.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/items/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := s.items.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete item", "error", err, "item_id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	s.overviewCache.Purge()

	slog.InfoContext(r.Context(), "Item deleted", "item_id", id)
	w.WriteHeader(http.StatusNoContent)
}
