package httpapi

import (
	"net/http"

	"digidiary/internal/server/services"
)

type profileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// handleProfile serves the /users/profile/{id} subtree. The path id must
// match the token's subject; a mismatch reads as 404 so the route does not
// confirm which ids exist.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/users/profile/")
	if len(segments) == 0 || len(segments) > 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id != userID {
		writeError(w, http.StatusNotFound, "not found or access denied")
		return
	}

	if len(segments) == 2 {
		switch segments[1] {
		case "password":
			if r.Method != http.MethodPut {
				methodNotAllowed(w)
				return
			}
			s.handleChangePassword(w, r, userID)
		case "stats":
			if r.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			stats, err := s.users.Stats(r.Context(), userID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, stats)
		default:
			writeError(w, http.StatusNotFound, "not found")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := s.users.GetProfile(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodPut:
		var req profileUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		user, err := s.users.UpdateProfile(r.Context(), userID, services.ProfileUpdate{
			Username: req.Username,
			Email:    req.Email,
			Avatar:   req.Avatar,
			Bio:      req.Bio,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request, userID int64) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.users.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
