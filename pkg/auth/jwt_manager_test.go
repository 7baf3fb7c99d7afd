package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerify(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerify_WrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}

func TestExpiry(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	exp, err := m.Expiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestExtractToken_Cookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-123"})

	token, err := ExtractToken(r)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestExtractToken_BearerHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok-456")

	token, err := ExtractToken(r)
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
}

func TestExtractToken_CookieWins(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	r.Header.Set("Authorization", "Bearer from-header")

	token, err := ExtractToken(r)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)
}

func TestExtractToken_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := ExtractToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = ExtractToken(r)
	assert.Error(t, err)
}
