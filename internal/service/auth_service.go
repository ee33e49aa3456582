package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and session issuance.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, scope model.Scope, err error)
	Renew(ctx context.Context, userID uint) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	accessSvc  AccessService
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, accessSvc AccessService, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		accessSvc:  accessSvc,
		jwtService: jwtService,
	}
}

// Register creates a pending user with a bcrypt-hashed password. The role is
// always "user" and activation always false, whatever the caller sent; only
// an admin can change either later. No token is issued: registration does
// not imply login because activation is still outstanding.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	if len(password) < 8 {
		return nil, apperrors.ErrPasswordTooShort
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Role:         model.RoleUser,
		Active:       false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and issues a session token plus the resolved
// effective scope. A missing account and a wrong password fail identically
// so the endpoint cannot be used to enumerate accounts; an inactive account
// with correct credentials is reported distinctly, a deliberate UX choice.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, model.Scope, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, model.Scope{}, apperrors.ErrInvalidCredentials
		}
		return "", nil, model.Scope{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, model.Scope{}, apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, model.Scope{}, apperrors.ErrNotActivated
	}

	scope, err := s.accessSvc.ResolveScope(ctx, user)
	if err != nil {
		return "", nil, model.Scope{}, fmt.Errorf("resolve scope: %w", err)
	}

	token, err := s.jwtService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, model.Scope{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user, scope, nil
}

// Renew re-issues a token for a still-active user, picking up any role
// change made since the old token was issued. It fails if the user has been
// deleted or deactivated in the meantime.
func (s *authService) Renew(ctx context.Context, userID uint) (string, *model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !user.Active {
		return "", nil, apperrors.ErrNotActivated
	}

	token, err := s.jwtService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
