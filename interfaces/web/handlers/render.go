// Package handlers exposes the JSON HTTP surface. Handlers stay thin:
// they resolve the caller's principal, parse parameters, and delegate
// every decision to the application services.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps service errors to HTTP statuses. A forbidden result
// for an anonymous caller is reported as 401 so clients know
// authenticating may help.
func writeError(w http.ResponseWriter, principal gallery.Principal, err error) {
	switch {
	case errors.Is(err, contracts.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, contracts.ErrForbidden):
		if !principal.Authenticated() {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, contracts.ErrSelfShare):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cannot share a photo with its owner"})
	case errors.Is(err, contracts.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, contracts.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeJSON parses the request body into v, limiting the body size.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}
