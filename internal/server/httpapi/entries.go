package httpapi

import (
	"net/http"

	"digidiary/internal/server/models"
	"digidiary/internal/server/services"
)

type entryCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type entryUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// handleEntries serves GET and POST /entries.
func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.entries.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(e *models.Entry) int64 { return e.UserID }, userID)
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req entryCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeServiceError(w, err)
			return
		}
		entry, err := s.entries.Create(r.Context(), userID, req.Title, req.Content)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)

	default:
		methodNotAllowed(w)
	}
}

// handleEntryByID serves GET, PUT, and DELETE /entries/{id}.
func (s *Server) handleEntryByID(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/entries/")
	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		entry, err := s.entries.Get(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)

	case http.MethodPut:
		var req entryUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		entry, err := s.entries.Update(r.Context(), userID, id, services.EntryUpdate{
			Title:   req.Title,
			Content: req.Content,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)

	case http.MethodDelete:
		if err := s.entries.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		methodNotAllowed(w)
	}
}
