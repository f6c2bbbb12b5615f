package infrastructure

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

// MockUserRepository is an in-memory UserRepository for service tests.
type MockUserRepository struct {
	Users  []domain.User
	Err    error
	lastID int
}

func (m *MockUserRepository) Save(user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return financeErrors.ErrEmailAlreadyRegistered
		}
	}
	m.lastID++
	user.ID = m.lastID
	m.Users = append(m.Users, *user)
	return nil
}

func (m *MockUserRepository) FindAll() ([]domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	users := []domain.User{}
	users = append(users, m.Users...)
	return users, nil
}

func (m *MockUserRepository) FindByID(id int) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) Update(user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return financeErrors.ErrEmailAlreadyRegistered
		}
	}
	for i, existing := range m.Users {
		if existing.ID == user.ID {
			m.Users[i] = *user
			return nil
		}
	}
	return financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) Delete(id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i, user := range m.Users {
		if user.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByID(id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, err := m.FindByID(id)
	if financeErrors.IsNotFoundError(err) {
		return false, nil
	}
	return err == nil, err
}
