package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Username       string         `json:"username" gorm:"not null"`
	Email          string         `json:"email" gorm:"unique;not null"`
	Password       string         `json:"-" gorm:"not null"`          // bcrypt hash
	Role           string         `json:"role" gorm:"default:'user'"` // admin, user
	Phone          string         `json:"phone"`
	DefaultAddress string         `json:"default_address"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)
