package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourboard/internal/config"
	"tourboard/internal/db"
	"tourboard/internal/model"
)

// Seed LGAs are Queensland tourism regions; the dashboard's distinct-LGA
// list and grant validation both derive from whatever ends up in this table.
var seedLGAs = []string{
	"Brisbane",
	"Cairns",
	"Gold Coast",
	"Noosa",
	"Sunshine Coast",
	"Townsville",
	"Whitsunday",
}

var seedMonths = []string{
	"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06",
	"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12",
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.LGAAccess{}, &model.TourismStat{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedAdmin(gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	inserted, err := seedStats(gormDB)
	if err != nil {
		log.Fatalf("Failed to seed tourism stats: %v", err)
	}
	log.Printf("Seed complete: %d tourism stat rows inserted", inserted)
}

// seedAdmin creates the bootstrap admin account unless it already exists.
// Admins resolve scope to "all", so no LGA grants are needed.
func seedAdmin(gormDB *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "admin@tourboard.local")
	password := getEnv("ADMIN_PASSWORD", "change-me-now")

	var existing model.User
	err := gormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     "Tourboard Admin",
		Role:         model.RoleAdmin,
		Active:       true,
	}
	if err := gormDB.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

// seedStats fills tourism_stats with a year of sample figures per LGA,
// skipping rows that already exist so reruns are safe.
func seedStats(gormDB *gorm.DB) (int, error) {
	inserted := 0
	for i, lga := range seedLGAs {
		for j, month := range seedMonths {
			var count int64
			if err := gormDB.Model(&model.TourismStat{}).
				Where("lga_name = ? AND month = ?", lga, month).
				Count(&count).Error; err != nil {
				return inserted, err
			}
			if count > 0 {
				continue
			}

			stat := model.TourismStat{
				LGAName:         lga,
				Month:           month,
				VisitorNights:   int64(40000 + 7000*i + 1500*j),
				Spend:           decimal.NewFromInt(int64(2500000 + 400000*i + 90000*j)),
				OccupancyRate:   0.45 + 0.03*float64(i) + 0.01*float64(j),
				AvgLengthOfStay: 2.5 + 0.2*float64(i),
			}
			if err := gormDB.Create(&stat).Error; err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
