package interfaces

import (
	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
)

type MockUserService struct {
	Users []domain.User
	Err   error
}

func (m *MockUserService) CreateUser(name, email string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	user := domain.User{ID: len(m.Users) + 1, Name: name, Email: email}
	m.Users = append(m.Users, user)
	return &user, nil
}

func (m *MockUserService) ListUsers() ([]domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	users := []domain.User{}
	users = append(users, m.Users...)
	return users, nil
}

func (m *MockUserService) GetUser(id int) (*domain.User, error) {
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

func (m *MockUserService) GetUserByEmail(email string) (*domain.User, error) {
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

func (m *MockUserService) UpdateUser(id int, patch domain.UserPatch) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i, user := range m.Users {
		if user.ID == id {
			patch.ApplyTo(&m.Users[i])
			found := m.Users[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserService) DeleteUser(id int) error {
	if m.Err != nil {
		return m.Err
	}
	for i, user := range m.Users {
		if user.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrUserNotFound
}
