package application

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type UserServiceInterface interface {
	DoesUserExistByID(id int) (bool, error)
}

type CategoryServiceInterface interface {
	DoesCategoryExistByID(id int) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	userService     UserServiceInterface
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, userService UserServiceInterface, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, userService: userService, categoryService: categoryService}
}

// CreateTransaction persists a new transaction under the given owner. The
// owner always comes from the request path, so a body-supplied owner id can
// never attribute the transaction to someone else.
func (s *TransactionService) CreateTransaction(ownerID int, transaction *domain.Transaction) error {
	transaction.OwnerID = ownerID
	if err := transaction.Validate(); err != nil {
		return err
	}

	userExists, err := s.userService.DoesUserExistByID(ownerID)
	if err != nil {
		return err
	}
	if !userExists {
		return financeErrors.ErrUserNotFound
	}

	categoryExists, err := s.categoryService.DoesCategoryExistByID(transaction.CategoryID)
	if err != nil {
		return err
	}
	if !categoryExists {
		return financeErrors.ErrCategoryNotFound
	}

	return s.repo.Save(transaction)
}

func (s *TransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	return s.repo.FindAll()
}

// GetUserTransactions lists the transactions owned by the user. An existing
// user with no transactions yields an empty list, not an error.
func (s *TransactionService) GetUserTransactions(ownerID int) ([]domain.Transaction, error) {
	userExists, err := s.userService.DoesUserExistByID(ownerID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, financeErrors.ErrUserNotFound
	}
	return s.repo.FindByUser(ownerID)
}

func (s *TransactionService) GetUserTransaction(ownerID, transactionID int) (*domain.Transaction, error) {
	return s.repo.FindByUserAndID(ownerID, transactionID)
}

// UpdateTransaction merges the patch into the stored transaction. The lookup
// is scoped by owner, so a transaction belonging to another user reads as not
// found. Owner and creation timestamp are never changed.
func (s *TransactionService) UpdateTransaction(ownerID, transactionID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByUserAndID(ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		categoryExists, err := s.categoryService.DoesCategoryExistByID(*patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if !categoryExists {
			return nil, financeErrors.ErrCategoryNotFound
		}
	}

	patch.ApplyTo(transaction)
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ownerID, transactionID int) error {
	deleted, err := s.repo.DeleteByUserAndID(ownerID, transactionID)
	if err != nil {
		return err
	}
	if !deleted {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
