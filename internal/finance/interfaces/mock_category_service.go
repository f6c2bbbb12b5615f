package interfaces

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type MockCategoryService struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryService) CreateCategory(name string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Categories {
		if existing.Name == name {
			return nil, financeErrors.ErrCategoryAlreadyExists
		}
	}
	category := domain.Category{ID: len(m.Categories) + 1, Name: name}
	m.Categories = append(m.Categories, category)
	return &category, nil
}

func (m *MockCategoryService) ListCategories() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	categories := []domain.Category{}
	categories = append(categories, m.Categories...)
	return categories, nil
}

func (m *MockCategoryService) GetCategory(id int) (*domain.Category, error) {
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

func (m *MockCategoryService) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i, category := range m.Categories {
		if category.ID == id {
			patch.ApplyTo(&m.Categories[i])
			found := m.Categories[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(id int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, category := range m.Categories {
		if category.ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}
