package model

import "time"

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// One row per user; the point workflow upserts it.
type SubscriptionModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;uniqueIndex"`
	Latitude  float64 `gorm:"type:decimal(10,7);not null"`
	Longitude float64 `gorm:"type:decimal(10,7);not null"`
	RadiusKm  int     `gorm:"not null;default:5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// UserModel is the slice of the 'users' table the notifier reads.
type UserModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	TelegramID *int64 `gorm:"uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SubscriptionRow is one row of the subscription page query, with the owner resolved.
type SubscriptionRow struct {
	ID        int64
	OwnerRef  string
	Latitude  float64
	Longitude float64
	RadiusKm  int
}
