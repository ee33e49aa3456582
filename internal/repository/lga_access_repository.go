package repository

import (
	"context"

	"gorm.io/gorm"

	"tourboard/internal/model"
)

// LGAAccessRepository defines grant persistence operations.
type LGAAccessRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]string, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	ReplaceForUser(ctx context.Context, userID uint, lgas []string) error
}

type lgaAccessRepository struct {
	db *gorm.DB
}

// NewLGAAccessRepository builds a GORM-backed grant repository.
func NewLGAAccessRepository(db *gorm.DB) LGAAccessRepository {
	return &lgaAccessRepository{db: db}
}

func (r *lgaAccessRepository) ListByUser(ctx context.Context, userID uint) ([]string, error) {
	var lgas []string
	err := r.db.WithContext(ctx).Model(&model.LGAAccess{}).
		Where("user_id = ?", userID).
		Order("lga_name").
		Pluck("lga_name", &lgas).Error
	if err != nil {
		return nil, err
	}
	return lgas, nil
}

func (r *lgaAccessRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LGAAccess{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ReplaceForUser swaps the user's grant set wholesale inside a transaction:
// a failure partway through rolls back to the previous set, never a partial
// new one. Concurrent replacements for the same user are not serialized
// beyond the store's isolation; last writer wins.
func (r *lgaAccessRepository) ReplaceForUser(ctx context.Context, userID uint, lgas []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.LGAAccess{}).Error; err != nil {
			return err
		}
		if len(lgas) == 0 {
			return nil
		}
		grants := make([]model.LGAAccess, 0, len(lgas))
		for _, name := range lgas {
			grants = append(grants, model.LGAAccess{UserID: userID, LGAName: name})
		}
		return tx.Create(&grants).Error
	})
}
