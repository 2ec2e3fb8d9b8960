package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/intern-match/internal/schemas"
)

// maxBodyBytes bounds request payloads. Profiles and catalogs are small;
// anything larger is a mistake.
const maxBodyBytes = 4 << 20

// readBody reads a request body with the size cap applied.
func (s *Server) readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	return body, nil
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// parseQueryInt parses an integer query parameter, returning the default when
// absent or malformed.
func parseQueryInt(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// validateAdvisory runs schema validation and logs failures without rejecting
// the request. Malformed sections degrade to "not provided" downstream.
func (s *Server) validateAdvisory(schemaPath string, document []byte) {
	if err := schemas.ValidateDocument(schemaPath, document); err != nil {
		s.logger.Warn("payload failed schema validation",
			zap.String("schema", schemaPath),
			zap.Error(err),
		)
	}
}
