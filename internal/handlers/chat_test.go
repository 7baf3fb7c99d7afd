package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/prochat/internal/handlers/dto"
	"github.com/thereayou/prochat/internal/shared"
)

func loggedIn(t *testing.T, fa *fakeAuth, username string) string {
	t.Helper()
	session := fa.open(username)
	return session.Token
}

func TestSendEndpoint(t *testing.T) {
	fa := newFakeAuth()
	fc := newFakeChat("alice", "bob")
	r := newTestRouter(fa, fc)
	token := loggedIn(t, fa, "alice")

	w := doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"bob","message":"hi"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool                `json:"success"`
		Message dto.MessageResponse `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "alice", body.Message.Sender)
	assert.Equal(t, "bob", body.Message.Receiver)
	assert.Equal(t, "hi", body.Message.Message)
	assert.False(t, body.Message.Timestamp.IsZero())
}

func TestSendEndpoint_Validation(t *testing.T) {
	fa := newFakeAuth()
	fc := newFakeChat("alice", "bob")
	r := newTestRouter(fa, fc)
	token := loggedIn(t, fa, "alice")

	w := doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"bob"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Receiver & message required", errorMessage(t, w))

	w = doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"alice","message":"hi"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot message yourself")

	w = doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"nobody","message":"hi"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Receiver not found")
}

func TestConversationEndpoint(t *testing.T) {
	fa := newFakeAuth()
	fc := newFakeChat("alice", "bob")
	r := newTestRouter(fa, fc)
	aliceToken := loggedIn(t, fa, "alice")
	bobToken := loggedIn(t, fa, "bob")

	doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"bob","message":"one"}`, aliceToken)
	doJSON(r, http.MethodPost, "/api/chat/send", `{"receiver":"alice","message":"two"}`, bobToken)

	w := doJSON(r, http.MethodGet, "/api/chat/alice/bob", "", aliceToken)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "one", messages[0].Message)
	assert.Equal(t, "two", messages[1].Message)

	// обе стороны видят одинаковую историю вне зависимости от порядка имён
	w2 := doJSON(r, http.MethodGet, "/api/chat/bob/alice", "", bobToken)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestConversationEndpoint_Empty(t *testing.T) {
	fa := newFakeAuth()
	r := newTestRouter(fa, newFakeChat("alice", "bob"))
	token := loggedIn(t, fa, "alice")

	w := doJSON(r, http.MethodGet, "/api/chat/alice/bob", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String(), "empty history must be a JSON array, not null")
}

func TestConversationEndpoint_Forbidden(t *testing.T) {
	fa := newFakeAuth()
	r := newTestRouter(fa, newFakeChat("alice", "bob", "eve"))
	eveToken := loggedIn(t, fa, "eve")

	w := doJSON(r, http.MethodGet, "/api/chat/alice/bob", "", eveToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestStudentsEndpoint(t *testing.T) {
	fa := newFakeAuth()
	r := newTestRouter(fa, newFakeChat("alice", "bob", "carol"))
	token := loggedIn(t, fa, "alice")

	w := doJSON(r, http.MethodGet, "/api/students", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, "alice", u.Username)
		assert.False(t, u.CreatedAt.IsZero())
	}

	// хэш пароля не должен утекать в ответ
	assert.NotContains(t, w.Body.String(), "hash")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestStudentsEndpoint_StoreError(t *testing.T) {
	fa := newFakeAuth()
	fc := newFakeChat("alice", "bob")
	r := newTestRouter(fa, fc)
	token := loggedIn(t, fa, "alice")

	fc.err = shared.ErrStoreUnavailable

	w := doJSON(r, http.MethodGet, "/api/students", "", token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// текст внутренней ошибки наружу не уходит
	assert.NotContains(t, w.Body.String(), "unavailable")
}
