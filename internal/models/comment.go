package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a chop.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Body      string         `gorm:"not null" json:"body"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	ChopID    uint           `gorm:"not null;index" json:"chop_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Chop      Chop           `gorm:"foreignKey:ChopID" json:"chop,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
