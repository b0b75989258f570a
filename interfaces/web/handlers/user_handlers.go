package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fotoshare/application"
	"fotoshare/domain/contracts"
	"fotoshare/domain/gallery"
)

// UserHandlers serves registration, login and account deletion.
type UserHandlers struct {
	principalResolver
	users *application.UserService
}

// NewUserHandlers creates the user handler group.
func NewUserHandlers(auth contracts.AuthContextProvider, users *application.UserService) *UserHandlers {
	return &UserHandlers{
		principalResolver: principalResolver{auth: auth},
		users:             users,
	}
}

// RegisterRoutes mounts the user endpoints.
func (h *UserHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/users", h.Register)
	r.Post("/login", h.Login)
	r.Get("/users/{userID}", h.Get)
	r.Delete("/users/{userID}", h.Delete)
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *gallery.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, gallery.Anonymous(), err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a bearer token.
func (h *UserHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, gallery.Anonymous(), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Get returns a user's public profile.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	userID, ok := urlParamInt64(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Delete removes the account and everything it owns. Only the account
// holder may.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	principal := h.resolve(r.Context(), r)
	userID, ok := urlParamInt64(w, r, "userID")
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), principal, userID); err != nil {
		writeError(w, principal, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
