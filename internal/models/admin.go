package models

import "time"

// Admin is seeded once at setup time and never managed through the API.
// Password holds a bcrypt hash.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
