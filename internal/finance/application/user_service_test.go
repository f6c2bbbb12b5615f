package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matferreira/finance-tracker/internal/finance/domain"
	financeErrors "github.com/matferreira/finance-tracker/internal/finance/errors"
	"github.com/matferreira/finance-tracker/internal/finance/infrastructure"
)

func TestCreateUser_FreshEmail(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo)

	created, err := service.CreateUser("Ana", "ana@x.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	found, err := service.GetUser(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
	assert.Equal(t, "ana@x.com", found.Email)
}

func TestCreateUser_DuplicateEmailIsConflict(t *testing.T) {
	repo := &infrastructure.MockUserRepository{
		Users: []domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
	}
	service := NewUserService(repo)

	// a different name does not matter, the email is the natural key
	_, err := service.CreateUser("Maria", "ana@x.com")
	assert.Error(t, err)
	assert.True(t, financeErrors.IsConflictError(err))
}

func TestCreateUser_InvalidEmailFormat(t *testing.T) {
	service := NewUserService(&infrastructure.MockUserRepository{})

	_, err := service.CreateUser("Ana", "not-an-email")
	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCreateUser_MissingName(t *testing.T) {
	service := NewUserService(&infrastructure.MockUserRepository{})

	_, err := service.CreateUser("", "ana@x.com")
	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateUser_MergesOnlySuppliedFields(t *testing.T) {
	repo := &infrastructure.MockUserRepository{
		Users: []domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
	}
	service := NewUserService(repo)

	newName := "Maria"
	updated, err := service.UpdateUser(1, domain.UserPatch{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "ana@x.com", updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	service := NewUserService(&infrastructure.MockUserRepository{})

	newName := "Maria"
	_, err := service.UpdateUser(42, domain.UserPatch{Name: &newName})
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestDeleteUser_NotFoundOnRepeat(t *testing.T) {
	repo := &infrastructure.MockUserRepository{
		Users: []domain.User{{ID: 1, Name: "Ana", Email: "ana@x.com"}},
	}
	service := NewUserService(repo)

	assert.NoError(t, service.DeleteUser(1))

	err := service.DeleteUser(1)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	service := NewUserService(&infrastructure.MockUserRepository{})

	_, err := service.GetUserByEmail("missing@x.com")
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}
