package server

import (
	"net/http"

	"github.com/jonathan/intern-match/internal/schemas"
	"github.com/jonathan/intern-match/internal/types"
)

// handleSaveProfile stores a user's profile snapshot.
// PUT /users/{id}/profile
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := s.readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.validateAdvisory(schemas.ProfileSchemaPath, body)

	profile := types.DecodeProfile(body)
	if err := s.db.SaveProfile(r.Context(), userID, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleGetProfile retrieves a user's stored profile snapshot.
// GET /users/{id}/profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if stored == nil {
		s.typedError(w, &ErrProfileNotFound{UserID: userID})
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}
