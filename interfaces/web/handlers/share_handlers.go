package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fotoshare/application"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// ShareHandlers serves per-photo share management. Only the photo
// owner gets past the service layer on any of these.
type ShareHandlers struct {
	principalResolver
	shares *application.ShareService
}

// NewShareHandlers creates the share handler group.
func NewShareHandlers(auth contracts.AuthContextProvider, shares *application.ShareService) *ShareHandlers {
	return &ShareHandlers{
		principalResolver: principalResolver{auth: auth},
		shares:            shares,
	}
}

// RegisterRoutes mounts the share endpoints.
func (h *ShareHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/photos/{photoID}/shares", h.List)
	r.Post("/photos/{photoID}/shares", h.Create)
	r.Delete("/photos/{photoID}/shares/{userID}", h.Revoke)
}

type shareResponse struct {
	ID         int64     `json:"id"`
	PhotoID    int64     `json:"photo_id"`
	UserID     int64     `json:"user_id"`
	Permission string    `json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
}

func toShareResponse(s *gallery.Share) shareResponse {
	return shareResponse{
		ID:         s.ID,
		PhotoID:    s.PhotoID,
		UserID:     s.UserID,
		Permission: s.Permission.String(),
		CreatedAt:  s.CreatedAt,
	}
}

// List returns the photo's share grants.
func (h *ShareHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	shares, err := h.shares.ListShares(r.Context(), principal, photoID)
	if err != nil {
		writeError(w, principal, err)
		return
	}

	out := make([]shareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, toShareResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

type shareCreateRequest struct {
	Username   string `json:"username"`
	Permission string `json:"permission"`
}

// Create grants or updates a share with the named user.
func (h *ShareHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	var req shareCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	permission, err := gallery.ParsePermission(req.Permission)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid permission"})
		return
	}

	share, err := h.shares.SharePhotoByUsername(r.Context(), principal, photoID, req.Username, permission)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShareResponse(share))
}

// Revoke removes the share for the given user. Revoking a share that
// does not exist is a no-op success.
func (h *ShareHandlers) Revoke(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}
	userID, ok := urlParamInt64(w, r, "userID")
	if !ok {
		return
	}

	if err := h.shares.RevokeShare(r.Context(), principal, photoID, userID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
