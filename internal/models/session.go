package models

import (
	"time"
)

// Session хранит след выданных сессий (для аудита и отзыва)
type Session struct {
	Token     string `gorm:"primaryKey;size:512"`
	Username  string `gorm:"index;not null"`
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
