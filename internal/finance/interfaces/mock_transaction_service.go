package interfaces

import (
	"time"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type MockTransactionService struct {
	Transactions []domain.Transaction
	KnownUserIDs []int
	Err          error
	LastOwnerID  int
}

func (m *MockTransactionService) userExists(id int) bool {
	for _, known := range m.KnownUserIDs {
		if known == id {
			return true
		}
	}
	return false
}

func (m *MockTransactionService) CreateTransaction(ownerID int, transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.LastOwnerID = ownerID
	if !m.userExists(ownerID) {
		return financeErrors.ErrUserNotFound
	}
	transaction.ID = len(m.Transactions) + 1
	transaction.OwnerID = ownerID
	transaction.CreatedAt = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	transactions := []domain.Transaction{}
	transactions = append(transactions, m.Transactions...)
	return transactions, nil
}

func (m *MockTransactionService) GetUserTransactions(ownerID int) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if !m.userExists(ownerID) {
		return nil, financeErrors.ErrUserNotFound
	}
	transactions := []domain.Transaction{}
	for _, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionService) GetUserTransaction(ownerID, transactionID int) (*domain.Transaction, error) {
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

func (m *MockTransactionService) UpdateTransaction(ownerID, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID && transaction.ID == transactionID {
			patch.ApplyTo(&m.Transactions[i])
			found := m.Transactions[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(ownerID, transactionID int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID && transaction.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
