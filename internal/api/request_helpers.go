package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// getPathID extracts a positive integer ID from the URL path parameters.
//
// Returns domain.ErrInvalidID (wrapped in a ValidationError) when the
// parameter is missing, not an integer, or not positive.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// parsePageRequest reads page and per_page from the query string.
// Absent parameters take the defaults; non-numeric or out-of-range values
// produce a domain.PaginationError.
func parsePageRequest(r *http.Request, defaultPerPage, maxPerPage int) (domain.PageRequest, error) {
	query := r.URL.Query()

	page, err := parsePositiveParam(query.Get(domain.ParamPage), domain.ParamPage, 1)
	if err != nil {
		return domain.PageRequest{}, err
	}

	perPage, err := parsePositiveParam(query.Get(domain.ParamPerPage), domain.ParamPerPage, defaultPerPage)
	if err != nil {
		return domain.PageRequest{}, err
	}

	return domain.NewPageRequest(page, perPage, maxPerPage)
}

func parsePositiveParam(raw, param string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewPaginationError(param, raw, "must be a positive integer")
	}

	return value, nil
}
