package application

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(name string) (*domain.Category, error) {
	category := &domain.Category{Name: name}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByName(name)
	if err == nil {
		return nil, financeErrors.ErrCategoryAlreadyExists
	}
	if !financeErrors.IsNotFoundError(err) {
		return nil, err
	}

	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories() ([]domain.Category, error) {
	return s.repo.FindAll()
}

func (s *CategoryService) GetCategory(id int) (*domain.Category, error) {
	return s.repo.FindByID(id)
}

func (s *CategoryService) GetCategoryByName(name string) (*domain.Category, error) {
	return s.repo.FindByName(name)
}

func (s *CategoryService) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(category)
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category and, through the cascading foreign key,
// every transaction that references it.
func (s *CategoryService) DeleteCategory(id int) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) DoesCategoryExistByID(id int) (bool, error) {
	return s.repo.ExistsByID(id)
}
