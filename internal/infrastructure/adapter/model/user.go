package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	UserID           string    `gorm:"column:user_id;primaryKey;size:64"`
	ReputationPoints int64     `gorm:"not null;default:0"`
	Blocked          bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
