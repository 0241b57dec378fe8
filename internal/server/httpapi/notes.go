package httpapi

import (
	"io"
	"net/http"

	"digidiary/internal/server/models"
	"digidiary/internal/server/services"
)

type noteCreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
	Priority string `json:"priority"`

	AudioFilename string  `json:"audio_filename"`
	AudioDuration float64 `json:"audio_duration"`
	AudioSize     int64   `json:"audio_size"`
}

type noteUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Tags     *string `json:"tags"`
	Priority *string `json:"priority"`
}

type audioUploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// handleNotes serves GET and POST /notes.
func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.notes.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items = filterOwned(items, func(n *models.Note) int64 { return n.UserID }, userID)
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req noteCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeServiceError(w, err)
			return
		}
		note, err := s.notes.Create(r.Context(), userID, services.NoteInput{
			Title:         req.Title,
			Content:       req.Content,
			Category:      req.Category,
			Tags:          req.Tags,
			Priority:      req.Priority,
			AudioFilename: req.AudioFilename,
			AudioDuration: req.AudioDuration,
			AudioSize:     req.AudioSize,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, note)

	default:
		methodNotAllowed(w)
	}
}

// handleNotesSub routes the /notes/ subtree. Audio downloads are served
// without a token so recorded clips can be played from a plain audio tag;
// everything else requires auth.
func (s *Server) handleNotesSub(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r, "/notes/")

	if len(segments) == 2 && segments[0] == "audio" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.handleAudioDownload(w, r, segments[1])
		return
	}

	s.requireAuth(s.handleNotesAuthed)(w, r)
}

func (s *Server) handleNotesAuthed(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	segments := pathSegments(r, "/notes/")
	if len(segments) == 1 && segments[0] == "upload-audio" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleAudioUpload(w, r)
		return
	}

	if len(segments) == 0 || len(segments) > 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id, ok := parseID(segments[0])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if len(segments) == 2 {
		if segments[1] != "favorite" || r.Method != http.MethodPut {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		note, err := s.notes.ToggleFavorite(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
		return
	}

	switch r.Method {
	case http.MethodGet:
		note, err := s.notes.Get(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)

	case http.MethodPut:
		var req noteUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		note, err := s.notes.Update(r.Context(), userID, id, services.NoteUpdate{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			Tags:     req.Tags,
			Priority: req.Priority,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)

	case http.MethodDelete:
		if err := s.notes.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAudioUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.audioMaxBytes)
	if err := r.ParseMultipartForm(s.audioMaxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "audio file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing audio file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read audio file")
		return
	}

	filename, size, contentType, err := s.notes.UploadAudio(r.Context(), header.Filename, data)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, audioUploadResponse{
		Filename: filename,
		URL:      "/notes/audio/" + filename,
		Size:     size,
		Type:     contentType,
	})
}

func (s *Server) handleAudioDownload(w http.ResponseWriter, r *http.Request, filename string) {
	data, contentType, err := s.notes.GetAudio(r.Context(), filename)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setCORS(w)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
