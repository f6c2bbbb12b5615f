package domain

import (
	"time"

	"github.com/matferreira/finance-tracker/internal/finance/errors"
)

const maxDescriptionLength = 200

type Transaction struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int       `json:"owner_id"`
	CategoryID  int       `json:"category_id"`
}

// TransactionPatch lists the optional fields of a partial update. The owner
// and the creation timestamp are immutable and deliberately absent here.
type TransactionPatch struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	CategoryID  *int     `json:"category_id"`
}

func (p TransactionPatch) ApplyTo(transaction *Transaction) {
	if p.Description != nil {
		transaction.Description = *p.Description
	}
	if p.Amount != nil {
		transaction.Amount = *p.Amount
	}
	if p.CategoryID != nil {
		transaction.CategoryID = *p.CategoryID
	}
}

func (t *Transaction) Validate() error {
	if t.Description == "" {
		return errors.NewValidationError("Description is required")
	}
	if len(t.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if t.CategoryID == 0 {
		return errors.NewValidationError("Category id is required")
	}
	return nil
}

type TransactionRepository interface {
	// Save persists a new transaction and fills in its generated id and
	// server-set creation timestamp.
	Save(transaction *Transaction) error
	FindAll() ([]Transaction, error)
	FindByUser(ownerID int) ([]Transaction, error)
	FindByUserAndID(ownerID, transactionID int) (*Transaction, error)
	Update(transaction *Transaction) error
	DeleteByUserAndID(ownerID, transactionID int) (bool, error)
}
