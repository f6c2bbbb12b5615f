package domain

import (
	"github.com/matferreira/finance-tracker/internal/finance/errors"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch lists the optional fields of a partial update. A nil field was not
// sent by the client and must be left untouched.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ApplyTo merges the patch into the user, field by field.
func (p UserPatch) ApplyTo(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.NewValidationError("Name is required")
	}
	if u.Email == "" {
		return errors.NewValidationError("Email is required")
	}
	return nil
}

type UserRepository interface {
	Save(user *User) error
	FindAll() ([]User, error)
	FindByID(id int) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(user *User) error
	Delete(id int) (bool, error)
	ExistsByID(id int) (bool, error)
}
