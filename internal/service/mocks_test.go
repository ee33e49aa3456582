package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tourboard/internal/model"
	"tourboard/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByActive(ctx context.Context, active bool) ([]model.User, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteWithGrants(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLGAAccessRepository is a mock implementation of repository.LGAAccessRepository.
type MockLGAAccessRepository struct {
	mock.Mock
}

func (m *MockLGAAccessRepository) ListByUser(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLGAAccessRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLGAAccessRepository) ReplaceForUser(ctx context.Context, userID uint, lgas []string) error {
	args := m.Called(ctx, userID, lgas)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) DistinctLGAs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStatsRepository) SpendByLGA(ctx context.Context, f repository.StatsFilter) ([]model.SpendPoint, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SpendPoint), args.Error(1)
}

func (m *MockStatsRepository) OccupancyByLGA(ctx context.Context, f repository.StatsFilter) ([]model.OccupancyPoint, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OccupancyPoint), args.Error(1)
}

func (m *MockStatsRepository) StayByLGA(ctx context.Context, f repository.StatsFilter) ([]model.StayPoint, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StayPoint), args.Error(1)
}

// MockAccessService is a mock implementation of AccessService.
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) GetGrants(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccessService) ReplaceGrants(ctx context.Context, userID uint, requested []string) (int, error) {
	args := m.Called(ctx, userID, requested)
	return args.Int(0), args.Error(1)
}

func (m *MockAccessService) ResolveScope(ctx context.Context, user *model.User) (model.Scope, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.Scope), args.Error(1)
}
