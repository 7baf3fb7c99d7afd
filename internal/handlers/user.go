package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/prochat/internal/handlers/dto"
	"github.com/thereayou/prochat/internal/middleware"
)

type UserHandler struct {
	chat Chatter
}

func NewUserHandler(chat Chatter) *UserHandler {
	return &UserHandler{chat: chat}
}

// ListStudents возвращает всех пользователей кроме вызывающего,
// хэш пароля наружу не попадает
func (h *UserHandler) ListStudents(c *gin.Context) {
	caller := c.MustGet(middleware.UsernameKey).(string)

	users, err := h.chat.ListOtherUsers(c.Request.Context(), caller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, dto.NewUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, result)
}
