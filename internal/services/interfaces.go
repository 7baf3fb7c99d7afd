package services

import (
	"context"
	"time"

	"github.com/thereayou/prochat/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
	ListUsersExcept(ctx context.Context, username string) ([]models.User, error)
}

type MessageStore interface {
	SaveMessage(ctx context.Context, message *models.Message) error
	GetConversation(ctx context.Context, userA, userB string) ([]models.Message, error)
}

type SessionAudit interface {
	CreateSession(ctx context.Context, session *models.Session) error
	RevokeSession(ctx context.Context, token string) error
}

type SessionStore interface {
	Put(ctx context.Context, token, username string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type TokenManager interface {
	Generate(username string) (string, error)
	Verify(token string) (string, error)
	TokenDuration() time.Duration
}
