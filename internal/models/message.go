package models

import (
	"github.com/google/uuid"
	"time"
)

type Message struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Seq      int64     `gorm:"autoIncrement;uniqueIndex"`
	Sender   string    `gorm:"not null;index:idx_conversation,priority:1"`
	Receiver string    `gorm:"not null;index:idx_conversation,priority:2"`
	Text     string    `gorm:"not null"`
	// Timestamp назначается сервером в момент приёма, клиентское время не используется
	Timestamp time.Time `gorm:"not null;index:idx_conversation,priority:3"`
	Read      bool      `gorm:"not null;default:false"`
}
