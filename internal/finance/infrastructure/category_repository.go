package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	err := r.db.QueryRow(query, category.Name).Scan(&category.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrCategoryAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("could not create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(id int) (*domain.Category, error) {
	category := &domain.Category{}
	query := `SELECT id, name FROM categories WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) FindByName(name string) (*domain.Category, error) {
	category := &domain.Category{}
	query := `SELECT id, name FROM categories WHERE name = $1`
	err := r.db.QueryRow(query, name).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not find category by name: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(category *domain.Category) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2`
	result, err := r.db.Exec(query, category.Name, category.ID)
	if isUniqueViolation(err) {
		return financeErrors.ErrCategoryAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("could not update category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not update category: %w", err)
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category; transactions referencing it are removed by the
// ON DELETE CASCADE foreign key.
func (r *CategoryRepository) Delete(id int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("could not delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not delete category: %w", err)
	}
	return affected > 0, nil
}

func (r *CategoryRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`
	err := r.db.QueryRow(query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("could not check category existence: %w", err)
	}
	return exists, nil
}
