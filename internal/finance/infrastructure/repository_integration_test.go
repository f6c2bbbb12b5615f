//go:build integration
// +build integration

package infrastructure_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/matferreira/finance-tracker/internal/db"
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
	"github.com/matferreira/finance-tracker/internal/finance/infrastructure"
)

func setupTestDB(t *testing.T) *database.DBService {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	dbService, err := database.NewDBService(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })

	require.NoError(t, dbService.EnsureSchema())
	return dbService
}

func TestRepositories_EndToEndScenario(t *testing.T) {
	dbService := setupTestDB(t)

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	category := &domain.Category{Name: "Food"}
	require.NoError(t, categoryRepo.Save(category))
	assert.Equal(t, 1, category.ID)

	user := &domain.User{Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, userRepo.Save(user))
	assert.Equal(t, 1, user.ID)

	transaction := &domain.Transaction{
		Description: "Lunch",
		Amount:      12.5,
		OwnerID:     user.ID,
		CategoryID:  category.ID,
	}
	require.NoError(t, transactionRepo.Save(transaction))
	assert.Equal(t, 1, transaction.ID)
	assert.Equal(t, user.ID, transaction.OwnerID)
	assert.Equal(t, category.ID, transaction.CategoryID)
	assert.False(t, transaction.CreatedAt.IsZero())

	deleted, err := userRepo.Delete(user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = transactionRepo.FindByUserAndID(user.ID, transaction.ID)
	assert.True(t, financeErrors.IsNotFoundError(err))

	all, err := transactionRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserRepository_UniqueEmailViolation(t *testing.T) {
	dbService := setupTestDB(t)
	userRepo := infrastructure.NewUserRepository(dbService.DB)

	require.NoError(t, userRepo.Save(&domain.User{Name: "Ana", Email: "ana@x.com"}))

	err := userRepo.Save(&domain.User{Name: "Maria", Email: "ana@x.com"})
	assert.True(t, financeErrors.IsConflictError(err))

	// the same constraint backs updates, where no pre-check runs
	other := &domain.User{Name: "Bia", Email: "bia@x.com"}
	require.NoError(t, userRepo.Save(other))
	other.Email = "ana@x.com"
	err = userRepo.Update(other)
	assert.True(t, financeErrors.IsConflictError(err))
}

func TestTransactionRepository_ForeignKeyViolations(t *testing.T) {
	dbService := setupTestDB(t)

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	err := transactionRepo.Save(&domain.Transaction{Description: "Lunch", Amount: 12.5, OwnerID: 42, CategoryID: 1})
	assert.True(t, financeErrors.IsNotFoundError(err))

	user := &domain.User{Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, userRepo.Save(user))

	err = transactionRepo.Save(&domain.Transaction{Description: "Lunch", Amount: 12.5, OwnerID: user.ID, CategoryID: 42})
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestCascadeDelete_ScopedToOwner(t *testing.T) {
	dbService := setupTestDB(t)

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	category := &domain.Category{Name: "Food"}
	require.NoError(t, categoryRepo.Save(category))

	ana := &domain.User{Name: "Ana", Email: "ana@x.com"}
	bia := &domain.User{Name: "Bia", Email: "bia@x.com"}
	require.NoError(t, userRepo.Save(ana))
	require.NoError(t, userRepo.Save(bia))

	for _, description := range []string{"Lunch", "Coffee"} {
		require.NoError(t, transactionRepo.Save(&domain.Transaction{
			Description: description, Amount: 10, OwnerID: ana.ID, CategoryID: category.ID,
		}))
	}
	require.NoError(t, transactionRepo.Save(&domain.Transaction{
		Description: "Rent", Amount: 900, OwnerID: bia.ID, CategoryID: category.ID,
	}))

	deleted, err := userRepo.Delete(ana.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	anaTransactions, err := transactionRepo.FindByUser(ana.ID)
	require.NoError(t, err)
	assert.Empty(t, anaTransactions)

	biaTransactions, err := transactionRepo.FindByUser(bia.ID)
	require.NoError(t, err)
	assert.Len(t, biaTransactions, 1)
}

func TestTransactionRepository_UpdateKeepsCreatedAtAndOwner(t *testing.T) {
	dbService := setupTestDB(t)

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	category := &domain.Category{Name: "Food"}
	require.NoError(t, categoryRepo.Save(category))
	user := &domain.User{Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, userRepo.Save(user))

	transaction := &domain.Transaction{Description: "Lunch", Amount: 12.5, OwnerID: user.ID, CategoryID: category.ID}
	require.NoError(t, transactionRepo.Save(transaction))
	createdAt := transaction.CreatedAt

	transaction.Amount = 20
	require.NoError(t, transactionRepo.Update(transaction))

	stored, err := transactionRepo.FindByUserAndID(user.ID, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, stored.Amount)
	assert.Equal(t, "Lunch", stored.Description)
	assert.Equal(t, user.ID, stored.OwnerID)
	assert.True(t, stored.CreatedAt.Equal(createdAt))
}
