package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/prochat/internal/handlers/dto"
	"github.com/thereayou/prochat/internal/services"
	"github.com/thereayou/prochat/internal/shared"
	"github.com/thereayou/prochat/pkg/auth"
)

type Authenticator interface {
	Signup(ctx context.Context, username, password string) (*services.Session, error)
	Login(ctx context.Context, username, password string) (*services.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	auth         Authenticator
	secureCookie bool
}

func NewAuthHandler(auth Authenticator, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookie: secureCookie}
}

// Signup регистрирует пользователя и сразу открывает сессию
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username & password required"})
		return
	}

	if len(req.Password) < services.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password too short"})
		return
	}

	session, err := h.auth.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		case errors.Is(err, shared.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username & password required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, gin.H{"success": true, "username": session.Username})
}

// Login открывает сессию; причина отказа клиенту не раскрывается
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username & password required"})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidCredentials), errors.Is(err, shared.ErrInvalidInput):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, gin.H{"success": true, "username": session.Username})
}

// Logout отзывает сессию; с уже недействительным токеном отвечает успехом
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := auth.ExtractToken(c.Request)
	if err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session сообщает, открыта ли сессия; не требует аутентификации.
// Недоступность хранилища сессий — это ошибка сервера,
// а не анонимная сессия.
func (h *AuthHandler) Session(c *gin.Context) {
	resp := dto.SessionResponse{}

	if token, err := auth.ExtractToken(c.Request); err == nil {
		username, err := h.auth.Resolve(c.Request.Context(), token)
		switch {
		case err == nil:
			resp.LoggedIn = true
			resp.Username = &username
		case errors.Is(err, shared.ErrStoreUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *services.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie(auth.SessionCookieName, session.Token, maxAge, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
}
