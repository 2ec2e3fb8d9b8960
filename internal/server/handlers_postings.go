package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/intern-match/internal/db"
	"github.com/jonathan/intern-match/internal/ingestion"
)

var validate = validator.New()

// createPostingRequest is the payload for creating a posting.
type createPostingRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=300"`
	Company      string  `json:"company" validate:"required,min=1,max=300"`
	Location     *string `json:"location" validate:"omitempty,max=300"`
	JobType      *string `json:"job_type" validate:"omitempty,max=100"`
	Requirements *string `json:"requirements"`
	Description  *string `json:"description"`
	SalaryRange  *string `json:"salary_range" validate:"omitempty,max=100"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// updatePostingRequest is the payload for a partial posting update.
// Absent fields are left unchanged.
type updatePostingRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=300"`
	Company      *string `json:"company" validate:"omitempty,min=1,max=300"`
	Location     *string `json:"location" validate:"omitempty,max=300"`
	JobType      *string `json:"job_type" validate:"omitempty,max=100"`
	Requirements *string `json:"requirements"`
	Description  *string `json:"description"`
	SalaryRange  *string `json:"salary_range" validate:"omitempty,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// handleListPostings lists postings with optional filters.
// GET /postings?status=...&company=...&limit=...&offset=...
func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	opts := db.ListPostingsOptions{
		Status:  r.URL.Query().Get("status"),
		Company: r.URL.Query().Get("company"),
		Limit:   parseQueryInt(r, "limit", 100),
		Offset:  parseQueryInt(r, "offset", 0),
	}

	postings, err := s.db.ListPostings(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list postings")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"postings": postings,
		"count":    len(postings),
	})
}

// handleCreatePosting creates a new posting.
// POST /postings
func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	var req createPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.typedError(w, &ErrValidation{Message: validationMessage(err)})
		return
	}

	if req.Description != nil {
		cleaned := ingestion.NormalizeDescription(*req.Description)
		req.Description = &cleaned
	}

	posting, err := s.db.CreatePosting(r.Context(), db.PostingCreateInput{
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Location:     req.Location,
		JobType:      req.JobType,
		Requirements: req.Requirements,
		Description:  req.Description,
		SalaryRange:  req.SalaryRange,
		Status:       req.Status,
	})
	if err != nil {
		s.logger.Error("failed to create posting", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create posting")
		return
	}

	s.jsonResponse(w, http.StatusCreated, posting)
}

// handleGetPosting retrieves one posting.
// GET /postings/{id}
func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	posting, err := s.db.GetPostingByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get posting")
		return
	}
	if posting == nil {
		s.typedError(w, &ErrPostingNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleUpdatePosting applies a partial update to a posting.
// PUT /postings/{id}
func (s *Server) handleUpdatePosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		s.typedError(w, &ErrValidation{Message: validationMessage(err)})
		return
	}

	if req.Description != nil {
		cleaned := ingestion.NormalizeDescription(*req.Description)
		req.Description = &cleaned
	}

	posting, err := s.db.UpdatePosting(r.Context(), id, db.PostingUpdateInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		Requirements: req.Requirements,
		Description:  req.Description,
		SalaryRange:  req.SalaryRange,
		Status:       req.Status,
	})
	if err != nil {
		s.logger.Error("failed to update posting", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to update posting")
		return
	}
	if posting == nil {
		s.typedError(w, &ErrPostingNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleDeletePosting removes a posting.
// DELETE /postings/{id}
func (s *Server) handleDeletePosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.DeletePosting(r.Context(), id); err != nil {
		s.typedError(w, &ErrPostingNotFound{ID: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag()+" validation")
	}
	return strings.Join(parts, "; ")
}
