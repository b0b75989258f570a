package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fotoshare/application"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// AlbumHandlers serves album management. Albums are strictly
// owner-private, so every endpoint requires the owner.
type AlbumHandlers struct {
	principalResolver
	albums *application.AlbumService
}

// NewAlbumHandlers creates the album handler group.
func NewAlbumHandlers(auth contracts.AuthContextProvider, albums *application.AlbumService) *AlbumHandlers {
	return &AlbumHandlers{
		principalResolver: principalResolver{auth: auth},
		albums:            albums,
	}
}

// RegisterRoutes mounts the album endpoints.
func (h *AlbumHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/albums", h.List)
	r.Post("/albums", h.Create)
	r.Get("/albums/{albumID}", h.Get)
	r.Patch("/albums/{albumID}", h.Update)
	r.Delete("/albums/{albumID}", h.Delete)
	r.Get("/albums/{albumID}/photos", h.ListPhotos)
	r.Put("/albums/{albumID}/photos/{photoID}", h.AddPhoto)
	r.Delete("/albums/{albumID}/photos/{photoID}", h.RemovePhoto)
}

type albumResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAlbumResponse(a *gallery.Album) albumResponse {
	return albumResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

type albumRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns the caller's albums.
func (h *AlbumHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)

	albums, err := h.albums.ListByOwner(r.Context(), principal)
	if err != nil {
		writeError(w, principal, err)
		return
	}

	out := make([]albumResponse, 0, len(albums))
	for _, a := range albums {
		out = append(out, toAlbumResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create makes a new album owned by the caller.
func (h *AlbumHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)

	var req albumRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	album, err := h.albums.Create(r.Context(), principal, req.Name, req.Description)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAlbumResponse(album))
}

// Get returns one album.
func (h *AlbumHandlers) Get(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}

	album, err := h.albums.Get(r.Context(), principal, albumID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlbumResponse(album))
}

// Update edits the album's name or description.
func (h *AlbumHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}

	var req albumRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	album, err := h.albums.Update(r.Context(), principal, albumID, req.Name, req.Description)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlbumResponse(album))
}

// Delete removes the album. Member photos survive.
func (h *AlbumHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}

	if err := h.albums.Delete(r.Context(), principal, albumID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ListPhotos returns the album's member photos.
func (h *AlbumHandlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}

	photos, err := h.albums.ListPhotos(r.Context(), principal, albumID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponses(photos))
}

// AddPhoto places a photo in the album. Idempotent.
func (h *AlbumHandlers) AddPhoto(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	if err := h.albums.AddPhoto(r.Context(), principal, albumID, photoID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// RemovePhoto takes a photo out of the album.
func (h *AlbumHandlers) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	albumID, ok := urlParamInt64(w, r, "albumID")
	if !ok {
		return
	}
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	if err := h.albums.RemovePhoto(r.Context(), principal, albumID, photoID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
