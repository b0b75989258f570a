package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fotoshare/application"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// CommentHandlers serves the commentary surface.
type CommentHandlers struct {
	principalResolver
	comments *application.CommentService
}

// NewCommentHandlers creates the comment handler group.
func NewCommentHandlers(auth contracts.AuthContextProvider, comments *application.CommentService) *CommentHandlers {
	return &CommentHandlers{
		principalResolver: principalResolver{auth: auth},
		comments:          comments,
	}
}

// RegisterRoutes mounts the comment endpoints.
func (h *CommentHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/photos/{photoID}/comments", h.ListForPhoto)
	r.Post("/photos/{photoID}/comments", h.Add)
	r.Patch("/comments/{commentID}", h.Update)
	r.Delete("/comments/{commentID}", h.Delete)
}

type commentResponse struct {
	ID        int64     `json:"id"`
	PhotoID   int64     `json:"photo_id"`
	AuthorID  int64     `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentResponse(c *gallery.Commentary) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PhotoID:   c.PhotoID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

type commentRequest struct {
	Text string `json:"text"`
}

// ListForPhoto returns the photo's comments, newest last.
func (h *CommentHandlers) ListForPhoto(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	comments, err := h.comments.ListForPhoto(r.Context(), principal, photoID)
	if err != nil {
		writeError(w, principal, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Add posts a comment on the photo.
func (h *CommentHandlers) Add(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	photoID, ok := urlParamInt64(w, r, "photoID")
	if !ok {
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.comments.AddComment(r.Context(), principal, photoID, req.Text)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// Update edits a comment's text. Only the author may.
func (h *CommentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	commentID, ok := urlParamInt64(w, r, "commentID")
	if !ok {
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.comments.UpdateComment(r.Context(), principal, commentID, req.Text)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(comment))
}

// Delete removes a comment. The author or the photo owner may.
func (h *CommentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	commentID, ok := urlParamInt64(w, r, "commentID")
	if !ok {
		return
	}

	if err := h.comments.DeleteComment(r.Context(), principal, commentID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
