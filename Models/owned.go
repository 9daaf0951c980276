package Models

import "gorm.io/gorm"

// Owned is embedded by every record that belongs to a single practitioner.
// Active=false is the soft-delete marker; rows are never hard-deleted in the
// normal flow so payments and notes keep their history.
type Owned struct {
	gorm.Model
	UserID uint `json:"user_id"`
	Active bool `json:"active" gorm:"default:true"`
}

// OwnedBy scopes a query to one practitioner's rows, deleted or not.
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// ActiveOwnedBy scopes a query to one practitioner's live rows. Every default
// listing and aggregation goes through this filter.
func ActiveOwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND active = ?", userID, true)
	}
}
