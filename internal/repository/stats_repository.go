package repository

import (
	"context"

	"gorm.io/gorm"

	"tourboard/internal/model"
)

// StatsFilter narrows an aggregation query. Zero values mean "no filter";
// LGAs nil means unrestricted, LGAs empty means match nothing.
type StatsFilter struct {
	LGAs  []string
	Start string // inclusive YYYY-MM
	End   string // inclusive YYYY-MM
}

// StatsRepository issues the aggregation queries behind the dashboard charts
// and exposes the live distinct-LGA list grants are validated against.
type StatsRepository interface {
	DistinctLGAs(ctx context.Context) ([]string, error)
	SpendByLGA(ctx context.Context, f StatsFilter) ([]model.SpendPoint, error)
	OccupancyByLGA(ctx context.Context, f StatsFilter) ([]model.OccupancyPoint, error)
	StayByLGA(ctx context.Context, f StatsFilter) ([]model.StayPoint, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository builds a GORM-backed stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) DistinctLGAs(ctx context.Context) ([]string, error) {
	var lgas []string
	err := r.db.WithContext(ctx).Model(&model.TourismStat{}).
		Distinct("lga_name").
		Order("lga_name").
		Pluck("lga_name", &lgas).Error
	if err != nil {
		return nil, err
	}
	return lgas, nil
}

func (r *statsRepository) filtered(ctx context.Context, f StatsFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.TourismStat{})
	if f.LGAs != nil {
		q = q.Where("lga_name IN ?", f.LGAs)
	}
	if f.Start != "" {
		q = q.Where("month >= ?", f.Start)
	}
	if f.End != "" {
		q = q.Where("month <= ?", f.End)
	}
	return q
}

func (r *statsRepository) SpendByLGA(ctx context.Context, f StatsFilter) ([]model.SpendPoint, error) {
	points := []model.SpendPoint{}
	err := r.filtered(ctx, f).
		Select("lga_name, month, SUM(spend) AS total_spend").
		Group("lga_name, month").
		Order("lga_name, month").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *statsRepository) OccupancyByLGA(ctx context.Context, f StatsFilter) ([]model.OccupancyPoint, error) {
	points := []model.OccupancyPoint{}
	err := r.filtered(ctx, f).
		Select("lga_name, month, AVG(occupancy_rate) AS occupancy_rate").
		Group("lga_name, month").
		Order("lga_name, month").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *statsRepository) StayByLGA(ctx context.Context, f StatsFilter) ([]model.StayPoint, error) {
	points := []model.StayPoint{}
	err := r.filtered(ctx, f).
		Select("lga_name, month, AVG(avg_length_of_stay) AS avg_length_of_stay").
		Group("lga_name, month").
		Order("lga_name, month").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
