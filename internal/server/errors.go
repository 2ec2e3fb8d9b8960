package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrPostingNotFound indicates the posting does not exist
type ErrPostingNotFound struct {
	ID uuid.UUID
}

func (e *ErrPostingNotFound) Error() string {
	return fmt.Sprintf("posting not found: %s", e.ID)
}

// ErrProfileNotFound indicates no profile snapshot is stored for the user
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found for user: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPostingNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// typedError writes an error response with the status derived from the
// error's type.
func (s *Server) typedError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
