package domain

import (
	"github.com/matferreira/finance-tracker/internal/finance/errors"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryPatch lists the optional fields of a partial update.
type CategoryPatch struct {
	Name *string `json:"name"`
}

func (p CategoryPatch) ApplyTo(category *Category) {
	if p.Name != nil {
		category.Name = *p.Name
	}
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name is required")
	}
	return nil
}

type CategoryRepository interface {
	Save(category *Category) error
	FindAll() ([]Category, error)
	FindByID(id int) (*Category, error)
	FindByName(name string) (*Category, error)
	Update(category *Category) error
	Delete(id int) (bool, error)
	ExistsByID(id int) (bool, error)
}
