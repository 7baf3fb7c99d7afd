package services

import (
	"context"
	"errors"
	"time"

	"github.com/thereayou/prochat/internal/models"
	"github.com/thereayou/prochat/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

// dummyHash — bcrypt от случайной строки; сравнение с ним выполняется,
// когда пользователь не найден, чтобы время ответа login не отличалось
// от случая "неверный пароль"
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Session результат успешной аутентификации
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	audit    SessionAudit
	tokens   TokenManager
}

func NewAuthService(users UserStore, sessions SessionStore, audit SessionAudit, tokens TokenManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, audit: audit, tokens: tokens}
}

// Signup создаёт пользователя и сразу открывает сессию (auto-login)
func (s *AuthService) Signup(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, shared.ErrInvalidInput
	}
	if len(password) < MinPasswordLength {
		return nil, shared.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, username)
}

// Login проверяет учётные данные; неизвестный пользователь и неверный
// пароль дают один и тот же ответ
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, shared.ErrInvalidInput
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// выравнивание по времени с веткой "неверный пароль"
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	return s.openSession(ctx, user.Username)
}

// Logout отзывает токен; повторный вызов с тем же токеном — no-op
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	return s.audit.RevokeSession(ctx, token)
}

// Resolve возвращает username живой сессии
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", shared.ErrUnauthenticated
	}

	if _, err := s.tokens.Verify(token); err != nil {
		return "", shared.ErrUnauthenticated
	}

	username, err := s.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}

	return username, nil
}

func (s *AuthService) openSession(ctx context.Context, username string) (*Session, error) {
	token, err := s.tokens.Generate(username)
	if err != nil {
		return nil, err
	}

	ttl := s.tokens.TokenDuration()
	expiresAt := time.Now().Add(ttl)

	if err := s.sessions.Put(ctx, token, username, ttl); err != nil {
		return nil, err
	}

	if err := s.audit.CreateSession(ctx, &models.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &Session{Token: token, Username: username, ExpiresAt: expiresAt}, nil
}
