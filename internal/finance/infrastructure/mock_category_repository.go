package infrastructure

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

// MockCategoryRepository is an in-memory CategoryRepository for service tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
	lastID     int
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Categories {
		if existing.Name == category.Name {
			return financeErrors.ErrCategoryAlreadyExists
		}
	}
	m.lastID++
	category.ID = m.lastID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	categories := []domain.Category{}
	categories = append(categories, m.Categories...)
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(id int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) FindByName(name string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.Name == name {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Categories {
		if existing.Name == category.Name && existing.ID != category.ID {
			return financeErrors.ErrCategoryAlreadyExists
		}
	}
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i, category := range m.Categories {
		if category.ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) ExistsByID(id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, err := m.FindByID(id)
	if financeErrors.IsNotFoundError(err) {
		return false, nil
	}
	return err == nil, err
}
