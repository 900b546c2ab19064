package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed in the context by the authentication
// middleware.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// getPathID extracts a numeric ID from the URL path parameters.
// Returns a ValidationError when the parameter is missing or not a positive
// integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// queryInt64 parses an optional int64 query parameter.
// Returns (nil, nil) when the parameter is absent.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
	}

	return &value, nil
}

// queryDate parses an optional "2006-01-02" query parameter.
// Returns (nil, nil) when the parameter is absent.
func queryDate(r *http.Request, name string) (*domain.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date in YYYY-MM-DD form", domain.ErrValidation)
	}

	return &date, nil
}
