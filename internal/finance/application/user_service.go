package application

import (
	"github.com/badoux/checkmail"
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return financeErrors.ErrInvalidEmail
	}
	return nil
}

// CreateUser persists a new user. The email uniqueness check here is
// advisory; the unique constraint on users.email is what makes it hold under
// concurrent creates.
func (s *UserService) CreateUser(name, email string) (*domain.User, error) {
	user := &domain.User{Name: name, Email: email}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByEmail(email)
	if err == nil {
		return nil, financeErrors.ErrEmailAlreadyRegistered
	}
	if !financeErrors.IsNotFoundError(err) {
		return nil, err
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) GetUser(id int) (*domain.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) GetUserByEmail(email string) (*domain.User, error) {
	return s.repo.FindByEmail(email)
}

// UpdateUser merges the patch into the stored user and writes it back. Fields
// the client did not send stay untouched. Uniqueness is not pre-checked on
// update; a duplicate email surfaces as a conflict from the repository via
// the unique constraint.
func (s *UserService) UpdateUser(id int, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if err := validateEmailAddress(*patch.Email); err != nil {
			return nil, err
		}
	}
	patch.ApplyTo(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and, through the cascading foreign key, every
// transaction the user owns.
func (s *UserService) DeleteUser(id int) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return financeErrors.ErrUserNotFound
	}
	return nil
}

func (s *UserService) DoesUserExistByID(id int) (bool, error) {
	return s.repo.ExistsByID(id)
}
