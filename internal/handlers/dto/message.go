package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/prochat/internal/models"
)

type SendMessageRequest struct {
	Receiver string `json:"receiver" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// MessageResponse внешняя форма сообщения; внутреннее поле text
// наружу отдаётся как message
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Message:   m.Text,
		Timestamp: m.Timestamp,
		Read:      m.Read,
	}
}

// UserResponse внешняя форма пользователя, без хэша пароля
type UserResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
