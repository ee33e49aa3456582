package service

import (
	"context"
	"fmt"
	"time"

	"tourboard/internal/auth"
	"tourboard/internal/cache"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/repository"
)

const (
	lgaListCacheKey = "lgas:distinct"
	lgaListCacheTTL = 5 * time.Minute
)

// StatsQuery carries the chart query parameters.
type StatsQuery struct {
	LGA   string
	Start string
	End   string
}

// StatsService serves the dashboard's aggregation queries, restricted to the
// caller's effective scope.
type StatsService interface {
	ListLGAs(ctx context.Context) ([]string, error)
	Spend(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.SpendPoint, error)
	Occupancy(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.OccupancyPoint, error)
	Stay(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.StayPoint, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	lgaRepo   repository.LGAAccessRepository
	cache     *cache.Client
}

// NewStatsService builds a StatsService.
func NewStatsService(statsRepo repository.StatsRepository, lgaRepo repository.LGAAccessRepository, cacheClient *cache.Client) StatsService {
	return &statsService{statsRepo: statsRepo, lgaRepo: lgaRepo, cache: cacheClient}
}

// ListLGAs returns the distinct LGA list, cached briefly since the dataset
// changes rarely and every dashboard session asks for it.
func (s *statsService) ListLGAs(ctx context.Context) ([]string, error) {
	var lgas []string
	if s.cache.GetJSON(ctx, lgaListCacheKey, &lgas) {
		return lgas, nil
	}

	lgas, err := s.statsRepo.DistinctLGAs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lgas: %w", err)
	}
	s.cache.SetJSON(ctx, lgaListCacheKey, lgas, lgaListCacheTTL)
	return lgas, nil
}

// scopedFilter resolves the caller's live scope and intersects it with the
// query. The role comes from the token claim but the grant set is always
// read live, so a revoked grant stops serving data immediately even while
// the token is still valid.
func (s *statsService) scopedFilter(ctx context.Context, claims *auth.Claims, q StatsQuery) (repository.StatsFilter, error) {
	f := repository.StatsFilter{Start: q.Start, End: q.End}

	scope := model.AllScope()
	if claims.Role != model.RoleAdmin {
		lgas, err := s.lgaRepo.ListByUser(ctx, claims.UserID)
		if err != nil {
			return f, fmt.Errorf("list grants: %w", err)
		}
		scope = model.GrantScope(lgas)
	}

	if q.LGA != "" {
		if !scope.Allows(q.LGA) {
			return f, apperrors.ErrLGANotVisible
		}
		f.LGAs = []string{q.LGA}
		return f, nil
	}
	if !scope.All {
		// empty grant set stays non-nil and matches nothing
		f.LGAs = scope.LGAs
	}
	return f, nil
}

func (s *statsService) Spend(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.SpendPoint, error) {
	f, err := s.scopedFilter(ctx, claims, q)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.SpendByLGA(ctx, f)
}

func (s *statsService) Occupancy(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.OccupancyPoint, error) {
	f, err := s.scopedFilter(ctx, claims, q)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.OccupancyByLGA(ctx, f)
}

func (s *statsService) Stay(ctx context.Context, claims *auth.Claims, q StatsQuery) ([]model.StayPoint, error) {
	f, err := s.scopedFilter(ctx, claims, q)
	if err != nil {
		return nil, err
	}
	return s.statsRepo.StayByLGA(ctx, f)
}
