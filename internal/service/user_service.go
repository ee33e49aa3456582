package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/repository"
)

// UserService covers the admin-facing user lifecycle.
type UserService interface {
	ListActive(ctx context.Context) ([]model.User, error)
	ListPending(ctx context.Context) ([]model.User, error)
	Activate(ctx context.Context, id uint) (*model.User, error)
	Deactivate(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, fullName, role *string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, password string) error
	ClearPassword(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	lgaRepo  repository.LGAAccessRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, lgaRepo repository.LGAAccessRepository) UserService {
	return &userService{userRepo: userRepo, lgaRepo: lgaRepo}
}

func (s *userService) find(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) ListActive(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByActive(ctx, true)
}

func (s *userService) ListPending(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByActive(ctx, false)
}

// Activate moves a user from pending to active. The transition is refused
// while the user has no LGA grants: an active account must never have
// undefined data visibility.
func (s *userService) Activate(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.lgaRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count grants: %w", err)
	}
	if count == 0 {
		return nil, apperrors.ErrScopeRequired
	}

	user.Active = true
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Deactivate returns a user to the pending state. Unlike activation there is
// no precondition. An outstanding token stays valid until it expires; the
// change bites at the user's next login or renew.
func (s *userService) Deactivate(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Active = false
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Update patches full name and/or role. At least one field must be present
// and a role, if given, must be one of the assignable roles.
func (s *userService) Update(ctx context.Context, id uint, fullName, role *string) (*model.User, error) {
	if fullName == nil && role == nil {
		return nil, apperrors.ErrEmptyUpdate
	}
	if role != nil && !model.ValidRole(*role) {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if fullName != nil {
		user.FullName = *fullName
	}
	if role != nil {
		user.Role = *role
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the password hash. Ownership (self or admin) is
// enforced at the handler; the length floor is enforced here.
func (s *userService) UpdatePassword(ctx context.Context, id uint, password string) error {
	if len(password) < 8 {
		return apperrors.ErrPasswordTooShort
	}
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// ClearPassword blanks the stored hash so no password can match it until an
// admin sets a new one.
func (s *userService) ClearPassword(ctx context.Context, id uint) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	user.PasswordHash = ""
	if err := s.userRepo.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Delete removes the user and, transactionally, all their grants.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.DeleteWithGrants(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
