package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourismStat is one month of tourism figures for one local government area.
// This table is the live source of truth for the distinct-LGA list that
// grant validation checks against.
type TourismStat struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	LGAName         string          `json:"lga_name" gorm:"size:255;not null;uniqueIndex:idx_lga_month"`
	Month           string          `json:"month" gorm:"size:7;not null;uniqueIndex:idx_lga_month"` // YYYY-MM
	VisitorNights   int64           `json:"visitor_nights" gorm:"not null"`
	Spend           decimal.Decimal `json:"spend" gorm:"type:decimal(20,2);not null"`
	OccupancyRate   float64         `json:"occupancy_rate" gorm:"not null"`
	AvgLengthOfStay float64         `json:"avg_length_of_stay" gorm:"not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SpendPoint is one point on the visitor-spend chart.
type SpendPoint struct {
	LGAName    string          `json:"lga_name"`
	Month      string          `json:"month"`
	TotalSpend decimal.Decimal `json:"total_spend"`
}

// OccupancyPoint is one point on the occupancy chart.
type OccupancyPoint struct {
	LGAName       string  `json:"lga_name"`
	Month         string  `json:"month"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// StayPoint is one point on the length-of-stay chart.
type StayPoint struct {
	LGAName         string  `json:"lga_name"`
	Month           string  `json:"month"`
	AvgLengthOfStay float64 `json:"avg_length_of_stay"`
}
