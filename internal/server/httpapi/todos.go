package httpapi

import (
	"net/http"
	"time"

	"digidiary/internal/server/models"
	"digidiary/internal/server/services"
)

type todoCreateRequest struct {
	Text       string     `json:"text" validate:"required"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type todoUpdateRequest struct {
	Text       *string    `json:"text"`
	Completed  *bool      `json:"completed"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// handleTodos serves GET and POST /todo.
func (s *Server) handleTodos(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.todos.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(t *models.Todo) int64 { return t.UserID }, userID)
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req todoCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeServiceError(w, err)
			return
		}
		todo, err := s.todos.Create(r.Context(), userID, req.Text, req.ExpiryDate)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, todo)

	default:
		methodNotAllowed(w)
	}
}

// handleTodoSub serves the /todo/ subtree: GET /todo/trash, PUT /todo/{id},
// DELETE /todo/{id} (moves to trash), PUT /todo/{id}/restore, and
// DELETE /todo/{id}/permanent.
func (s *Server) handleTodoSub(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/todo/")
	if len(segments) == 1 && segments[0] == "trash" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		items, err := s.todos.ListTrash(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(t *models.Todo) int64 { return t.UserID }, userID)
		writeJSON(w, http.StatusOK, items)
		return
	}

	if len(segments) == 0 || len(segments) > 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	if len(segments) == 2 {
		switch {
		case segments[1] == "restore" && r.Method == http.MethodPut:
			todo, err := s.todos.Restore(r.Context(), userID, id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, todo)
		case segments[1] == "permanent" && r.Method == http.MethodDelete:
			if err := s.todos.DeletePermanent(r.Context(), userID, id); err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		default:
			writeError(w, http.StatusNotFound, "not found")
		}
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req todoUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		todo, err := s.todos.Update(r.Context(), userID, id, services.TodoUpdate{
			Text:       req.Text,
			Completed:  req.Completed,
			ExpiryDate: req.ExpiryDate,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, todo)

	case http.MethodDelete:
		todo, err := s.todos.MoveToTrash(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, todo)

	default:
		methodNotAllowed(w)
	}
}
