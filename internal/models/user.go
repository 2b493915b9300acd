package models

import "time"

// User владелец ссылок.
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"          gorm:"size:255;not null"`
	Email        string    `json:"email"         gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `json:"password_hash" gorm:"size:255;not null"`
	ID           uint      `json:"id"            gorm:"primaryKey"`
}
