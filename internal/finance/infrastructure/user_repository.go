package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(user *domain.User) error {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, user.Name, user.Email).Scan(&user.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrEmailAlreadyRegistered
	}
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindAll() ([]domain.User, error) {
	rows, err := r.db.Query(`SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("could not scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(id int) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, name, email FROM users WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, name, email FROM users WHERE email = $1`
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(user *domain.User) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`
	result, err := r.db.Exec(query, user.Name, user.Email, user.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrEmailAlreadyRegistered
	}
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if affected == 0 {
		return financeErrors.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; the foreign key on transactions.owner_id cascades
// so all owned transactions go with it in the same statement.
func (r *UserRepository) Delete(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete user: %w", err)
	}
	return affected > 0, nil
}

func (r *UserRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	err := r.db.QueryRow(query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("could not check user existence: %w", err)
	}
	return exists, nil
}
