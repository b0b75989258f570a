package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fotoshare/application"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// PhotoHandlers serves photo metadata, binaries and the effective
// permission lookup.
type PhotoHandlers struct {
	principalResolver
	photos *application.PhotoService
	access *application.AccessService
}

// NewPhotoHandlers creates the photo handler group.
func NewPhotoHandlers(
	auth contracts.AuthContextProvider,
	photos *application.PhotoService,
	access *application.AccessService,
) *PhotoHandlers {
	return &PhotoHandlers{
		principalResolver: principalResolver{auth: auth},
		photos:            photos,
		access:            access,
	}
}

// RegisterRoutes mounts the photo endpoints.
func (h *PhotoHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/photos", h.ListAccessible)
	r.Get("/photos/mine", h.ListMine)
	r.Post("/photos", h.Upload)
	r.Get("/photos/{photoID}", h.Get)
	r.Get("/photos/{photoID}/file", h.File)
	r.Get("/photos/{photoID}/permission", h.Permission)
	r.Patch("/photos/{photoID}", h.Update)
	r.Delete("/photos/{photoID}", h.Delete)
}

type photoResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Visibility  string    `json:"visibility"`
	ContentType string    `json:"content_type"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPhotoResponse(p *gallery.Photo) photoResponse {
	return photoResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Visibility:  p.Visibility.String(),
		ContentType: p.ContentType,
		Filename:    p.OriginalFilename,
		CreatedAt:   p.CreatedAt,
	}
}

func toPhotoResponses(photos []*gallery.Photo) []photoResponse {
	out := make([]photoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return out
}

// ListAccessible returns every photo the caller may view.
func (h *PhotoHandlers) ListAccessible(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)

	photos, err := h.photos.ListAccessible(r.Context(), principal)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponses(photos))
}

// ListMine returns the caller's own photos.
func (h *PhotoHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)

	photos, err := h.photos.ListByOwner(r.Context(), principal)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponses(photos))
}

// Upload stores a new photo. The binary is the request body; metadata
// travels in query parameters and headers.
func (h *PhotoHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)

	visibility := gallery.VisibilityPrivate
	if v := r.URL.Query().Get("visibility"); v != "" {
		parsed, err := gallery.ParseVisibility(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid visibility"})
			return
		}
		visibility = parsed
	}

	upload := application.PhotoUpload{
		Title:            r.URL.Query().Get("title"),
		Description:      r.URL.Query().Get("description"),
		Visibility:       visibility,
		ContentType:      r.Header.Get("Content-Type"),
		OriginalFilename: r.Header.Get("X-Original-Filename"),
		Data:             r.Body,
	}

	photo, err := h.photos.Upload(r.Context(), principal, upload)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPhotoResponse(photo))
}

// Get returns photo metadata.
func (h *PhotoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	photo, err := h.photos.Get(r.Context(), principal, photoID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponse(photo))
}

// File streams the photo binary.
func (h *PhotoHandlers) File(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	photo, rc, err := h.photos.OpenFile(r.Context(), principal, photoID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

// Permission reports the caller's effective permission on the photo.
func (h *PhotoHandlers) Permission(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	level, err := h.access.EffectivePermission(r.Context(), principal, photoID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"permission": level.String()})
}

type photoUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Visibility  *string `json:"visibility"`
}

// Update edits photo metadata or visibility.
func (h *PhotoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	var req photoUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	update := application.PhotoUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Visibility != nil {
		parsed, err := gallery.ParseVisibility(*req.Visibility)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid visibility"})
			return
		}
		update.Visibility = &parsed
	}

	photo, err := h.photos.Update(r.Context(), principal, photoID, update)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponse(photo))
}

// Delete removes the photo and everything hanging off it.
func (h *PhotoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	if err := h.photos.Delete(r.Context(), principal, photoID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
