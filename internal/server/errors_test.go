package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrPostingNotFound{ID: uuid.New()}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrProfileNotFound{UserID: uuid.New()}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Message: "title is required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("something else")))
}

func TestErrorMessages(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	assert.Contains(t, (&ErrPostingNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrValidation{Message: "bad"}).Error(), "bad")
}
