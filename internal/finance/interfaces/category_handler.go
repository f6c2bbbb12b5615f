package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	CreateCategory(name string) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(id int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, err := h.service.GetCategory(id)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create category")
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var patch domain.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(id, patch)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.service.DeleteCategory(id); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
