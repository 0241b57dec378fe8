package httpapi

import (
	"net/http"

	"digidiary/internal/server/models"
	"digidiary/internal/server/services"
)

type moodCreateRequest struct {
	Mood string `json:"mood" validate:"required"`
	Date string `json:"date" validate:"required"`
}

type moodUpdateRequest struct {
	Mood *string `json:"mood"`
	Date *string `json:"date"`
}

// handleMoods serves GET and POST /moods.
func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.moods.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(m *models.Mood) int64 { return m.UserID }, userID)
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req moodCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeServiceError(w, err)
			return
		}
		mood, err := s.moods.Create(r.Context(), userID, req.Mood, req.Date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, mood)

	default:
		methodNotAllowed(w)
	}
}

// handleMoodByID serves PUT and DELETE /moods/{id}.
func (s *Server) handleMoodByID(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/moods/")
	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid mood id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req moodUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		mood, err := s.moods.Update(r.Context(), userID, id, services.MoodUpdate{
			Mood: req.Mood,
			Date: req.Date,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mood)

	case http.MethodDelete:
		if err := s.moods.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		methodNotAllowed(w)
	}
}
