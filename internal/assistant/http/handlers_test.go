package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/assistant/llm"
	"github.com/creatorpro/backend/internal/auth"
)

func setupRouter(client *llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserID, 1)
	})
	New(client, zap.NewNop()).Register(r.Group("/api/ai"))
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatRequiresMessages(t *testing.T) {
	r := setupRouter(llm.New("key", "http://localhost:0", "gpt-4o"))
	w := postChat(t, r, `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatUnconfiguredReturns503(t *testing.T) {
	r := setupRouter(llm.New("", "http://localhost:0", "gpt-4o"))
	w := postChat(t, r, `{"messages":[{"role":"user","content":"hello"}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, body["message"], "not configured")
}

func TestChatRejectsBadMessages(t *testing.T) {
	r := setupRouter(llm.New("key", "http://localhost:0", "gpt-4o"))

	w := postChat(t, r, `{"messages":[{"role":"tool","content":"hi"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "role")

	w = postChat(t, r, `{"messages":[{"role":"user","content":"   "}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content")
}

func TestChatInjectsSystemPrompt(t *testing.T) {
	var got struct {
		Messages []llm.Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	r := setupRouter(llm.New("key", srv.URL, "gpt-4o"))
	w := postChat(t, r, `{"messages":[{"role":"user","content":"how do I invoice?"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)

	var resp struct {
		Message struct {
			Role      string `json:"role"`
			Content   string `json:"content"`
			Timestamp string `json:"timestamp"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "assistant", resp.Message.Role)
	assert.Equal(t, "ok", resp.Message.Content)
	assert.NotEmpty(t, resp.Message.Timestamp)
}

func TestChatKeepsCallerSystemPrompt(t *testing.T) {
	var got struct {
		Messages []llm.Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	r := setupRouter(llm.New("key", srv.URL, "gpt-4o"))
	w := postChat(t, r, `{"messages":[{"role":"system","content":"custom"},{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "custom", got.Messages[0].Content)
}

func TestChatDetectsSystemPromptAtAnyPosition(t *testing.T) {
	var got struct {
		Messages []llm.Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	r := setupRouter(llm.New("key", srv.URL, "gpt-4o"))
	w := postChat(t, r, `{"messages":[{"role":"user","content":"hi"},{"role":"system","content":"custom"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, got.Messages, 2)

	systems := 0
	for _, m := range got.Messages {
		if m.Role == "system" {
			systems++
		}
	}
	assert.Equal(t, 1, systems, "a caller-supplied system message suppresses injection")
}

func TestChatPerUserRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	r := setupRouter(llm.New("key", srv.URL, "gpt-4o"))

	limited := false
	for i := 0; i < 10; i++ {
		w := postChat(t, r, `{"messages":[{"role":"user","content":"hi"}]}`)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.True(t, limited, "burst of 10 requests should trip the limiter")
}
