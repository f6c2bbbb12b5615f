package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Save inserts the transaction and fills in the generated id and the
// database-assigned creation timestamp.
func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (description, amount, owner_id, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, transaction.Description, transaction.Amount, transaction.OwnerID, transaction.CategoryID).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if isForeignKeyViolation(err, "owner") {
		return financeErrors.ErrUserNotFound
	}
	if isForeignKeyViolation(err, "category") {
		return financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindAll() ([]domain.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, description, amount, created_at, owner_id, category_id
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *TransactionRepository) FindByUser(ownerID int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, description, amount, created_at, owner_id, category_id
		FROM transactions WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions for user: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *TransactionRepository) FindByUserAndID(ownerID, transactionID int) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}
	query := `
		SELECT id, description, amount, created_at, owner_id, category_id
		FROM transactions WHERE owner_id = $1 AND id = $2`
	err := r.db.QueryRow(query, ownerID, transactionID).
		Scan(&transaction.ID, &transaction.Description, &transaction.Amount,
			&transaction.CreatedAt, &transaction.OwnerID, &transaction.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return transaction, nil
}

// Update writes the mutable columns only. The owner and created_at columns are
// never part of the statement.
func (r *TransactionRepository) Update(transaction *domain.Transaction) error {
	query := `
		UPDATE transactions SET description = $1, amount = $2, category_id = $3
		WHERE id = $4`
	result, err := r.db.Exec(query, transaction.Description, transaction.Amount, transaction.CategoryID, transaction.ID)
	if isForeignKeyViolation(err, "category") {
		return financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteByUserAndID(ownerID, transactionID int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE owner_id = $1 AND id = $2`, ownerID, transactionID)
	if err != nil {
		return false, fmt.Errorf("could not delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete transaction: %w", err)
	}
	return affected > 0, nil
}

func scanTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.Description, &transaction.Amount,
			&transaction.CreatedAt, &transaction.OwnerID, &transaction.CategoryID); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
