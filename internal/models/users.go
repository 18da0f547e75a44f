package models

import "time"

type User struct {
	ID              string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username        string    `gorm:"type:varchar(100);unique;not null" json:"username"`
	Email           string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash    string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FullName        string    `gorm:"type:varchar(200)" json:"full_name"`
	ThemePreference string    `gorm:"type:varchar(20);default:'light'" json:"theme_preference"`
	CreatedAt       time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	FullName string `json:"full_name" binding:"max=200"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}
