package infrastructure

import (
	"time"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository for service
// tests.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error
	lastID       int
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.lastID++
	transaction.ID = m.lastID
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindAll() ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transactions := []domain.Transaction{}
	transactions = append(transactions, m.Transactions...)
	return transactions, nil
}

func (m *MockTransactionRepository) FindByUser(ownerID int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transactions := []domain.Transaction{}
	for _, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindByUserAndID(ownerID, transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID && transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID {
			// owner and created_at are immutable columns
			transaction.OwnerID = existing.OwnerID
			transaction.CreatedAt = existing.CreatedAt
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) DeleteByUserAndID(ownerID, transactionID int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID && transaction.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
