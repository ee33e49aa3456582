package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tourboard/internal/auth"
	"tourboard/internal/cache"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/repository"
)

// nil cache client degrades to a permanent miss, which is exactly what these
// tests want
var noCache *cache.Client

func TestStatsService_Spend_ScopeEnforcement(t *testing.T) {
	claims := &auth.Claims{UserID: 1, Role: model.RoleUser}

	t.Run("lga outside grants is forbidden", func(t *testing.T) {
		lgaRepo := new(MockLGAAccessRepository)
		lgaRepo.On("ListByUser", mock.Anything, uint(1)).Return([]string{"Cairns"}, nil)

		svc := NewStatsService(new(MockStatsRepository), lgaRepo, noCache)
		_, err := svc.Spend(context.Background(), claims, StatsQuery{LGA: "Brisbane"})
		assert.ErrorIs(t, err, apperrors.ErrLGANotVisible)
	})

	t.Run("granted lga passes", func(t *testing.T) {
		lgaRepo := new(MockLGAAccessRepository)
		lgaRepo.On("ListByUser", mock.Anything, uint(1)).Return([]string{"Cairns"}, nil)
		statsRepo := new(MockStatsRepository)
		statsRepo.On("SpendByLGA", mock.Anything, repository.StatsFilter{LGAs: []string{"Cairns"}}).
			Return([]model.SpendPoint{{LGAName: "Cairns", Month: "2025-01", TotalSpend: decimal.NewFromInt(100)}}, nil)

		svc := NewStatsService(statsRepo, lgaRepo, noCache)
		points, err := svc.Spend(context.Background(), claims, StatsQuery{LGA: "Cairns"})
		assert.NoError(t, err)
		assert.Len(t, points, 1)
	})

	t.Run("no lga filter restricts to grant set", func(t *testing.T) {
		lgaRepo := new(MockLGAAccessRepository)
		lgaRepo.On("ListByUser", mock.Anything, uint(1)).Return([]string{"Cairns", "Noosa"}, nil)
		statsRepo := new(MockStatsRepository)
		statsRepo.On("SpendByLGA", mock.Anything, repository.StatsFilter{LGAs: []string{"Cairns", "Noosa"}}).
			Return([]model.SpendPoint{}, nil)

		svc := NewStatsService(statsRepo, lgaRepo, noCache)
		_, err := svc.Spend(context.Background(), claims, StatsQuery{})
		assert.NoError(t, err)
		statsRepo.AssertExpectations(t)
	})

	t.Run("empty grant set matches nothing but is not an error", func(t *testing.T) {
		lgaRepo := new(MockLGAAccessRepository)
		lgaRepo.On("ListByUser", mock.Anything, uint(1)).Return([]string{}, nil)
		statsRepo := new(MockStatsRepository)
		statsRepo.On("SpendByLGA", mock.Anything, repository.StatsFilter{LGAs: []string{}}).
			Return([]model.SpendPoint{}, nil)

		svc := NewStatsService(statsRepo, lgaRepo, noCache)
		points, err := svc.Spend(context.Background(), claims, StatsQuery{})
		assert.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestStatsService_AdminUnrestricted(t *testing.T) {
	admin := &auth.Claims{UserID: 2, Role: model.RoleAdmin}

	statsRepo := new(MockStatsRepository)
	statsRepo.On("OccupancyByLGA", mock.Anything, repository.StatsFilter{Start: "2025-01", End: "2025-06"}).
		Return([]model.OccupancyPoint{}, nil)

	// no grant lookup happens for admins
	lgaRepo := new(MockLGAAccessRepository)

	svc := NewStatsService(statsRepo, lgaRepo, noCache)
	_, err := svc.Occupancy(context.Background(), admin, StatsQuery{Start: "2025-01", End: "2025-06"})
	assert.NoError(t, err)
	lgaRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestStatsService_ListLGAs(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	statsRepo.On("DistinctLGAs", mock.Anything).Return([]string{"Brisbane", "Cairns"}, nil)

	svc := NewStatsService(statsRepo, new(MockLGAAccessRepository), noCache)
	lgas, err := svc.ListLGAs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Brisbane", "Cairns"}, lgas)
}
