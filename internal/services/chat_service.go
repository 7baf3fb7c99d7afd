package services

import (
	"context"

	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
)

type ChatService struct {
	users    UserStore
	messages MessageStore
}

func NewChatService(users UserStore, messages MessageStore) *ChatService {
	return &ChatService{users: users, messages: messages}
}

// Send сохраняет сообщение от sender к receiver.
// Получатель должен существовать и отличаться от отправителя.
func (s *ChatService) Send(ctx context.Context, sender, receiver, text string) (*models.Message, error) {
	if receiver == "" || text == "" {
		return nil, shared.ErrInvalidInput
	}
	if sender == receiver {
		return nil, shared.ErrInvalidInput
	}

	exists, err := s.users.UserExists(ctx, receiver)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrNotFound
	}

	message := &models.Message{
		Sender:   sender,
		Receiver: receiver,
		Text:     text,
	}

	if err := s.messages.SaveMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// History возвращает переписку пары (userA, userB) в хронологическом порядке.
// Доступна только участникам пары.
func (s *ChatService) History(ctx context.Context, caller, userA, userB string) ([]models.Message, error) {
	if caller != userA && caller != userB {
		return nil, shared.ErrForbidden
	}
	return s.messages.GetConversation(ctx, userA, userB)
}

// ListOtherUsers возвращает всех пользователей кроме вызывающего
func (s *ChatService) ListOtherUsers(ctx context.Context, caller string) ([]models.User, error) {
	return s.users.ListUsersExcept(ctx, caller)
}
