package httpapi

import (
	"net/http"
	"time"

	"digidiary/internal/server/models"
	"digidiary/internal/server/services"
)

type taskCreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

type taskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	IsCompleted *bool      `json:"is_completed"`
}

// handleTasks serves GET and POST /tasks.
func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.tasks.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(t *models.Task) int64 { return t.UserID }, userID)
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req taskCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeServiceError(w, err)
			return
		}
		task, err := s.tasks.Create(r.Context(), userID, req.Title, req.Description, req.Deadline)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, task)

	default:
		methodNotAllowed(w)
	}
}

// handleTaskByID serves PUT and DELETE /tasks/{id}.
func (s *Server) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/tasks/")
	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req taskUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		task, err := s.tasks.Update(r.Context(), userID, id, services.TaskUpdate{
			Title:       req.Title,
			Description: req.Description,
			Deadline:    req.Deadline,
			IsCompleted: req.IsCompleted,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, task)

	case http.MethodDelete:
		if err := s.tasks.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		methodNotAllowed(w)
	}
}
