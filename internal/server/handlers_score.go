package server

import (
	"net/http"

	"github.com/jonathan/intern-match/internal/schemas"
	"github.com/jonathan/intern-match/internal/scoring"
	"github.com/jonathan/intern-match/internal/types"
)

// handleScore scores an inline profile payload.
// POST /score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.validateAdvisory(schemas.ProfileSchemaPath, body)

	profile := types.DecodeProfile(body)
	s.jsonResponse(w, http.StatusOK, scoring.ComputeScore(profile))
}

// handleUserScore scores a user's stored profile snapshot.
// GET /users/{id}/score
func (s *Server) handleUserScore(w http.ResponseWriter, r *http.Request) {
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

	s.jsonResponse(w, http.StatusOK, scoring.ComputeScore(stored.Profile))
}
