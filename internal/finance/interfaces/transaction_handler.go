package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(ownerID int, transaction *domain.Transaction) error
	GetAllTransactions() ([]domain.Transaction, error)
	GetUserTransactions(ownerID int) ([]domain.Transaction, error)
	GetUserTransaction(ownerID, transactionID int) (*domain.Transaction, error)
	UpdateTransaction(ownerID, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(ownerID, transactionID int) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) ListAllTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	transactions, err := h.service.GetUserTransactions(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetUserTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	transactionID, err := parseIDParam(r, "tid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	transaction, err := h.service.GetUserTransaction(userID, transactionID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction creates a transaction under the user in the path. The
// request body cannot set the owner; any owner_id it carries is ignored.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		CategoryID  int     `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := &domain.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
	}
	if err := h.service.CreateTransaction(userID, transaction); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	transactionID, err := parseIDParam(r, "tid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var patch domain.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(userID, transactionID, patch)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	transactionID, err := parseIDParam(r, "tid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
