package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/drydock-dev/drydock/internal/api/apierr"
	"github.com/drydock-dev/drydock/internal/api/request"
	"github.com/drydock-dev/drydock/internal/api/response"
	"github.com/drydock-dev/drydock/internal/services/auth"
	"github.com/drydock-dev/drydock/internal/storage"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	authService *auth.Service
	storage     storage.Storage
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, storage storage.Storage) *UserHandler {
	return &UserHandler{
		authService: authService,
		storage:     storage,
	}
}

// Register handles POST /register and POST /users (identical semantics,
// the latter behind the auth gate)
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("username and password required"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewValidationError("username and password required"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("username and password required"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TokenResponse{Token: token})
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.storage.ListUsers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// Delete handles DELETE /users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		apierr.WriteError(w, apierr.NewNotFoundError("user not found"))
		return
	}

	if err := h.storage.DeleteUser(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
