package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/prochat/internal/handlers/dto"
	"github.com/thereayou/prochat/internal/middleware"
	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
)

type Chatter interface {
	Send(ctx context.Context, sender, receiver, text string) (*models.Message, error)
	History(ctx context.Context, caller, userA, userB string) ([]models.Message, error)
	ListOtherUsers(ctx context.Context, caller string) ([]models.User, error)
}

type ChatHandler struct {
	chat Chatter
}

func NewChatHandler(chat Chatter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// GetConversation отдаёт переписку пары пользователей из path-параметров
func (h *ChatHandler) GetConversation(c *gin.Context) {
	caller := c.MustGet(middleware.UsernameKey).(string)
	user1 := c.Param("user1")
	user2 := c.Param("user2")

	messages, err := h.chat.History(c.Request.Context(), caller, user1, user2)
	if err != nil {
		if errors.Is(err, shared.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	result := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		result = append(result, dto.NewMessageResponse(&messages[i]))
	}

	c.JSON(http.StatusOK, result)
}

// SendMessage принимает сообщение; отправитель берётся из сессии
func (h *ChatHandler) SendMessage(c *gin.Context) {
	sender := c.MustGet(middleware.UsernameKey).(string)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receiver & message required"})
		return
	}

	if sender == req.Receiver {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot message yourself"})
		return
	}

	message, err := h.chat.Send(c.Request.Context(), sender, req.Receiver, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Receiver not found"})
		case errors.Is(err, shared.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Receiver & message required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": dto.NewMessageResponse(message)})
}
