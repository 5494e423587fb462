package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username" example:"chef_anna"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email" example:"anna@example.com"`
	PasswordHash string    `json:"-"`
}
