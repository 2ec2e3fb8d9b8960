package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/intern-match/internal/db"
	"github.com/jonathan/intern-match/internal/types"
)

// recommendRequest is the inline recommendation payload. When Postings is
// provided the catalog is taken from the request; otherwise the stored active
// catalog is used.
type recommendRequest struct {
	Profile  json.RawMessage    `json:"profile"`
	Postings []types.JobPosting `json:"postings,omitempty"`
}

// handleRecommend ranks an inline profile against a catalog without storing
// anything.
// POST /recommendations
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req recommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if len(req.Profile) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "profile is required")
		return
	}

	postings := req.Postings
	if postings == nil {
		postings, err = s.db.ListActivePostings(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load postings")
			return
		}
	}

	profile := types.DecodeProfile(req.Profile)
	recs := s.orchestrator.Recommend(r.Context(), types.BuildSignature(profile), postings)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleGenerateRecommendations ranks a user's stored profile against the
// stored catalog and replaces the user's persisted recommendation set.
// POST /users/{id}/recommendations
func (s *Server) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var stored *db.StoredProfile
	var postings []types.JobPosting

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		stored, err = s.db.GetProfile(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		postings, err = s.db.ListActivePostings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load recommendation inputs", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load recommendation inputs")
		return
	}
	if stored == nil {
		s.typedError(w, &ErrProfileNotFound{UserID: userID})
		return
	}

	recs := s.orchestrator.Recommend(r.Context(), types.BuildSignature(stored.Profile), postings)

	if err := s.db.ReplaceRecommendations(r.Context(), userID, recs); err != nil {
		s.logger.Error("failed to store recommendations", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to store recommendations")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleListRecommendations returns a user's stored recommendations.
// GET /users/{id}/recommendations
func (s *Server) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := s.db.ListRecommendations(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list recommendations")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}
