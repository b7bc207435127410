package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/messages/domain"
)

type fakeStore struct {
	nextID   int
	messages map[int]domain.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, messages: map[int]domain.Message{}}
}

func (f *fakeStore) List(_ context.Context, userID int) ([]domain.Message, error) {
	out := []domain.Message{}
	for _, m := range f.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, n domain.NewMessage) (*domain.Message, error) {
	m := domain.Message{
		ID:          f.nextID,
		SenderID:    n.SenderID,
		RecipientID: n.RecipientID,
		Content:     n.Content,
	}
	f.nextID++
	f.messages[m.ID] = m
	return &m, nil
}

// MarkRead only succeeds for the recipient, matching the SQL predicate.
func (f *fakeStore) MarkRead(_ context.Context, id, userID int) (*domain.Message, error) {
	m, ok := f.messages[id]
	if !ok || m.RecipientID != userID {
		return nil, domain.ErrNotFound
	}
	m.Read = true
	f.messages[id] = m
	return &m, nil
}

func setup(userID int, store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.CtxUserID, userID) })
	New(store, zap.NewNop()).Register(r.Group("/api/messages"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageStampsSender(t *testing.T) {
	store := newFakeStore()
	r := setup(1, store)

	w := do(r, http.MethodPost, "/api/messages", `{"recipientId":2,"content":"Draft is ready for review."}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var m domain.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, 1, m.SenderID, "sender comes from the session, not the body")
	assert.Equal(t, 2, m.RecipientID)
	assert.False(t, m.Read)
}

func TestSendMessageValidation(t *testing.T) {
	r := setup(1, newFakeStore())

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/messages", `{"content":"no recipient"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/messages", `{"recipientId":2,"content":"  "}`).Code)
}

func TestListIncludesBothDirections(t *testing.T) {
	store := newFakeStore()
	store.Create(context.Background(), domain.NewMessage{SenderID: 1, RecipientID: 2, Content: "sent"})
	store.Create(context.Background(), domain.NewMessage{SenderID: 2, RecipientID: 1, Content: "received"})
	store.Create(context.Background(), domain.NewMessage{SenderID: 3, RecipientID: 4, Content: "unrelated"})

	r := setup(1, store)
	w := do(r, http.MethodGet, "/api/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.NotContains(t, w.Body.String(), "unrelated")
}

func TestOnlyRecipientCanMarkRead(t *testing.T) {
	store := newFakeStore()
	m, _ := store.Create(context.Background(), domain.NewMessage{SenderID: 1, RecipientID: 2, Content: "hello"})

	// the sender cannot mark it read
	sender := setup(1, store)
	w := do(sender, http.MethodPost, fmt.Sprintf("/api/messages/%d/read", m.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the recipient can
	recipient := setup(2, store)
	w = do(recipient, http.MethodPost, fmt.Sprintf("/api/messages/%d/read", m.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.messages[m.ID].Read)
}
