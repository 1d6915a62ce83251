package models

import "time"

// Favourite records a user's like on a chop.
// The combination of UserID and ChopID must be unique: each user contributes
// at most one increment to a chop's like counter.
type Favourite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_chop" json:"user_id"`
	ChopID    uint      `gorm:"not null;uniqueIndex:idx_user_chop" json:"chop_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Chop Chop `gorm:"foreignKey:ChopID" json:"chop,omitempty"`
}
