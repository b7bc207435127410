package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompletionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Raise your rates."}}]}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gpt-4o")
	content, err := c.CreateCompletion(context.Background(), []Message{
		{Role: "user", Content: "Should I raise my rates?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Raise your rates.", content)
}

func TestCreateCompletionNotConfigured(t *testing.T) {
	c := New("", "https://api.openai.com/v1", "gpt-4o")
	_, err := c.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateCompletionQuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gpt-4o")
	_, err := c.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestCreateCompletionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"server blew up"}}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gpt-4o")
	_, err := c.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestCreateCompletionEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "gpt-4o")
	content, err := c.CreateCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
