package model

import "time"

// LGAAccess grants one user visibility of one local government area's data.
// A user's grant set is always replaced wholesale, never patched.
type LGAAccess struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lga"`
	LGAName   string    `json:"lga_name" gorm:"size:255;not null;uniqueIndex:idx_user_lga"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the LGA initialism out of GORM's pluralizer.
func (LGAAccess) TableName() string {
	return "lga_access"
}
