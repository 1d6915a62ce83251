// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered ChopBox user.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Provider and ProviderID identify a linked social account ("google",
	// "facebook"). Both are empty for local accounts.
	Provider   string `gorm:"index:idx_users_provider" json:"provider,omitempty"`
	ProviderID string `gorm:"index:idx_users_provider" json:"-"`

	// ProfileComplete flips to true exactly once, when the profile fields
	// below are first populated.
	ProfileComplete bool   `gorm:"not null;default:false" json:"profile_complete"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Location        string `json:"location,omitempty"`
	About           string `json:"about,omitempty"`
	Gender          string `json:"gender,omitempty"`
	BestFood        string `json:"best_food,omitempty"`
	Avatar          string `json:"avatar,omitempty"`

	// ChopCount is not persisted; computed at query time for the leaderboard
	ChopCount int `gorm:"->" json:"chop_count,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Chops []Chop `gorm:"foreignKey:UserID" json:"chops,omitempty"`
}
