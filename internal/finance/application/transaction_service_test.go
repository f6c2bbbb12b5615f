package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
	"github.com/matferreira/finance-tracker/internal/finance/infrastructure"
)

func newTransactionServiceForTest(repo *infrastructure.MockTransactionRepository, users []domain.User, categories []domain.Category) *TransactionService {
	userService := NewUserService(&infrastructure.MockUserRepository{Users: users})
	categoryService := NewCategoryService(&infrastructure.MockCategoryRepository{Categories: categories})
	return NewTransactionService(repo, userService, categoryService)
}

func TestCreateTransaction_OwnerAlwaysFromArgument(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	// a client-supplied owner id must be overridden by the path owner
	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 1, OwnerID: 99}
	err := service.CreateTransaction(1, transaction)
	assert.NoError(t, err)
	assert.Equal(t, 1, transaction.OwnerID)
	assert.Equal(t, 1, transaction.ID)
	assert.False(t, transaction.CreatedAt.IsZero())
}

func TestCreateTransaction_UnknownUserWritesNothing(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo, nil, []domain.Category{{ID: 1, Name: "Food"}})

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 1}
	err := service.CreateTransaction(42, transaction)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo, []domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}}, nil)

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 7}
	err := service.CreateTransaction(1, transaction)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
	assert.Empty(t, repo.Transactions)
}

func TestGetUserTransactions_UnknownUser(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo, nil, nil)

	_, err := service.GetUserTransactions(42)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetUserTransactions_OnlyOwnedRows(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, Description: "Lunch", Amount: 12.5, OwnerID: 1, CategoryID: 1},
			{ID: 2, Description: "Rent", Amount: 900, OwnerID: 2, CategoryID: 1},
			{ID: 3, Description: "Coffee", Amount: 4.2, OwnerID: 1, CategoryID: 1},
		},
	}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}, {ID: 2, Name: "Bia", Email: "bia@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	transactions, err := service.GetUserTransactions(1)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	for _, transaction := range transactions {
		assert.Equal(t, 1, transaction.OwnerID)
	}
}

func TestGetUserTransaction_ScopedToOwner(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, Description: "Rent", Amount: 900, OwnerID: 2, CategoryID: 1},
		},
	}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}, {ID: 2, Name: "Bia", Email: "bia@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	_, err := service.GetUserTransaction(1, 1)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestUpdateTransaction_OnlyAmountChanges(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 1}
	assert.NoError(t, service.CreateTransaction(1, transaction))
	createdAt := transaction.CreatedAt

	newAmount := 20.0
	updated, err := service.UpdateTransaction(1, transaction.ID, domain.TransactionPatch{Amount: &newAmount})
	assert.NoError(t, err)
	assert.Equal(t, 20.0, updated.Amount)
	assert.Equal(t, "Lunch", updated.Description)
	assert.Equal(t, 1, updated.CategoryID)
	assert.Equal(t, 1, updated.OwnerID)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
}

func TestUpdateTransaction_UnknownCategoryInPatch(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 1}
	assert.NoError(t, service.CreateTransaction(1, transaction))

	missing := 7
	_, err := service.UpdateTransaction(1, transaction.ID, domain.TransactionPatch{CategoryID: &missing})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestDeleteTransaction_NotFoundOnRepeat(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo,
		[]domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
		[]domain.Category{{ID: 1, Name: "Food"}},
	)

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, CategoryID: 1}
	assert.NoError(t, service.CreateTransaction(1, transaction))

	assert.NoError(t, service.DeleteTransaction(1, transaction.ID))

	for i := 0; i < 2; i++ {
		err := service.DeleteTransaction(1, transaction.ID)
		assert.Error(t, err)
		assert.True(t, financeErrors.IsNotFoundError(err))
	}
}
