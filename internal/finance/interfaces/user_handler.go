package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
)

type UserServiceInterface interface {
	CreateUser(name, email string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	GetUser(id int) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	UpdateUser(id int, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(id int) error
}

type UserHandler struct {
	service      UserServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewUserHandler(
	service UserServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *UserHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &UserHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve users")
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondError(w, http.StatusBadRequest, "Email query parameter is required")
		return
	}

	user, err := h.service.GetUserByEmail(email)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve user")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve user")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(req.Name, req.Email)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create user")
		return
	}
	h.respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var patch domain.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(id, patch)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update user")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
