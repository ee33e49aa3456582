package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
)

func strPtr(s string) *string { return &s }

func TestUserService_Activate_RequiresGrants(t *testing.T) {
	userRepo := new(MockUserRepository)
	lgaRepo := new(MockLGAAccessRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Active: false}, nil)
	lgaRepo.On("CountByUser", mock.Anything, uint(1)).Return(int64(0), nil)

	svc := NewUserService(userRepo, lgaRepo)
	user, err := svc.Activate(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrScopeRequired)
	assert.Nil(t, user)
	// activation flag must be left untouched on refusal
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Activate_WithGrants(t *testing.T) {
	userRepo := new(MockUserRepository)
	lgaRepo := new(MockLGAAccessRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Active: false}, nil)
	lgaRepo.On("CountByUser", mock.Anything, uint(1)).Return(int64(2), nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(userRepo, lgaRepo)
	user, err := svc.Activate(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, user.Active)
	userRepo.AssertExpectations(t)
}

func TestUserService_Activate_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(userRepo, new(MockLGAAccessRepository))
	_, err := svc.Activate(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_Deactivate(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Active: true}, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(userRepo, new(MockLGAAccessRepository))
	user, err := svc.Deactivate(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, user.Active)
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name          string
		fullName      *string
		role          *string
		expectedError error
	}{
		{name: "no fields", expectedError: apperrors.ErrEmptyUpdate},
		{name: "invalid role", role: strPtr("superuser"), expectedError: apperrors.ErrInvalidRole},
		{name: "name only", fullName: strPtr("New Name")},
		{name: "promote to admin", role: strPtr(model.RoleAdmin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			if tt.expectedError == nil {
				userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, FullName: "Old", Role: model.RoleUser}, nil)
				userRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			}

			svc := NewUserService(userRepo, new(MockLGAAccessRepository))
			user, err := svc.Update(context.Background(), 1, tt.fullName, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			if tt.fullName != nil {
				assert.Equal(t, *tt.fullName, user.FullName)
			}
			if tt.role != nil {
				assert.Equal(t, *tt.role, user.Role)
			}
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), new(MockLGAAccessRepository))
		err := svc.UpdatePassword(context.Background(), 1, "short")
		assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)
	})

	t.Run("replaces hash", func(t *testing.T) {
		user := &model.User{ID: 1, PasswordHash: "old-hash"}
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
		userRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(userRepo, new(MockLGAAccessRepository))
		err := svc.UpdatePassword(context.Background(), 1, "longenoughpassword")
		assert.NoError(t, err)
		assert.NotEqual(t, "old-hash", user.PasswordHash)
		assert.NotEqual(t, "longenoughpassword", user.PasswordHash)
	})
}

func TestUserService_ClearPassword(t *testing.T) {
	user := &model.User{ID: 1, PasswordHash: "some-hash"}
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(userRepo, new(MockLGAAccessRepository))
	err := svc.ClearPassword(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(userRepo, new(MockLGAAccessRepository))
		err := svc.Delete(context.Background(), 7)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("cascades grants", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7}, nil)
		userRepo.On("DeleteWithGrants", mock.Anything, uint(7)).Return(nil)

		svc := NewUserService(userRepo, new(MockLGAAccessRepository))
		err := svc.Delete(context.Background(), 7)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}
