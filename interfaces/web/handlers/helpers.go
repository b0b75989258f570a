package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// urlParamInt64 parses a chi URL parameter as a positive int64. A
// malformed or non-positive value returns ok=false after writing a 400.
func urlParamInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// principalResolver resolves the bearer credential of a request into a
// Principal. Missing or invalid credentials yield the anonymous
// principal; handlers never reject a request at this stage.
type principalResolver struct {
	auth contracts.AuthContextProvider
}

func (p principalResolver) resolve(ctx context.Context, r *http.Request) gallery.Principal {
	return p.auth.Resolve(ctx, r.Header.Get("Authorization"))
}
