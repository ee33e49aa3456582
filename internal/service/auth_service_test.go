package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		fullName      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "ann@example.com",
			password: "pw12345678",
			fullName: "Ann",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "taken@example.com",
			password: "pw12345678",
			fullName: "Someone",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name:          "password too short",
			email:         "short@example.com",
			password:      "short",
			fullName:      "Shorty",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMock(userRepo)

			svc := NewAuthService(userRepo, new(MockAccessService), auth.NewJWTService("test-secret"))
			user, err := svc.Register(context.Background(), tt.email, tt.password, tt.fullName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.False(t, user.Active)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", mock.Anything, "real@example.com").Return(&model.User{
		ID:           1,
		Email:        "real@example.com",
		PasswordHash: hashFor(t, "correct-password"),
		Role:         model.RoleUser,
		Active:       true,
	}, nil)

	svc := NewAuthService(userRepo, new(MockAccessService), auth.NewJWTService("test-secret"))

	_, _, _, missingErr := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	_, _, _, wrongErr := svc.Login(context.Background(), "real@example.com", "wrong-password")

	// unknown email and wrong password must be indistinguishable
	assert.ErrorIs(t, missingErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, missingErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_NotActivated(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "pending@example.com").Return(&model.User{
		ID:           2,
		Email:        "pending@example.com",
		PasswordHash: hashFor(t, "pw12345678"),
		Role:         model.RoleUser,
		Active:       false,
	}, nil)

	svc := NewAuthService(userRepo, new(MockAccessService), auth.NewJWTService("test-secret"))
	_, _, _, err := svc.Login(context.Background(), "pending@example.com", "pw12345678")
	assert.ErrorIs(t, err, apperrors.ErrNotActivated)
}

func TestAuthService_Login_Success(t *testing.T) {
	user := &model.User{
		ID:           3,
		Email:        "ann@example.com",
		PasswordHash: hashFor(t, "pw12345678"),
		Role:         model.RoleUser,
		Active:       true,
	}
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(user, nil)

	accessSvc := new(MockAccessService)
	accessSvc.On("ResolveScope", mock.Anything, user).Return(model.GrantScope([]string{"Cairns"}), nil)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(userRepo, accessSvc, jwtService)

	token, gotUser, scope, err := svc.Login(context.Background(), "ann@example.com", "pw12345678")
	assert.NoError(t, err)
	assert.Equal(t, user, gotUser)
	assert.False(t, scope.All)
	assert.Equal(t, []string{"Cairns"}, scope.LGAs)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestAuthService_Login_ClearedPasswordRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "cleared@example.com").Return(&model.User{
		ID:           4,
		Email:        "cleared@example.com",
		PasswordHash: "",
		Role:         model.RoleUser,
		Active:       true,
	}, nil)

	svc := NewAuthService(userRepo, new(MockAccessService), auth.NewJWTService("test-secret"))
	_, _, _, err := svc.Login(context.Background(), "cleared@example.com", "pw12345678")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Renew(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("user gone", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(userRepo, new(MockAccessService), jwtService)
		_, _, err := svc.Renew(context.Background(), 9)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("deactivated in the meantime", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Active: false}, nil)

		svc := NewAuthService(userRepo, new(MockAccessService), jwtService)
		_, _, err := svc.Renew(context.Background(), 5)
		assert.ErrorIs(t, err, apperrors.ErrNotActivated)
	})

	t.Run("picks up a role change", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(6)).Return(&model.User{
			ID:     6,
			Email:  "promoted@example.com",
			Role:   model.RoleAdmin,
			Active: true,
		}, nil)

		svc := NewAuthService(userRepo, new(MockAccessService), jwtService)
		token, _, err := svc.Renew(context.Background(), 6)
		assert.NoError(t, err)

		claims, err := jwtService.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})
}
