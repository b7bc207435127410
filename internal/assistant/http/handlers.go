package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/creatorpro/backend/internal/assistant/llm"
	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/metrics"
)

// systemPrompt frames the assistant for freelance business questions. It
// is prepended once when no message in the conversation carries the
// system role.
const systemPrompt = "You are a helpful business assistant for freelancers and creators. " +
	"You help with project management, client communication, pricing advice, invoicing, " +
	"time management, and growing a freelance business. Keep answers practical and concise."

type Handler struct {
	client *llm.Client
	log    *zap.Logger

	mu       sync.Mutex
	limiters map[int]*rate.Limiter
}

func New(client *llm.Client, log *zap.Logger) *Handler {
	return &Handler{
		client:   client,
		log:      log,
		limiters: make(map[int]*rate.Limiter),
	}
}

// limiter returns the per-user limiter, creating it on first use. Each
// user gets 5 requests per 10 seconds with a burst of 5.
func (h *Handler) limiter(userID int) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()
	lim, ok := h.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(2*time.Second), 5)
		h.limiters[userID] = lim
	}
	return lim
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

type chatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) chat(c *gin.Context) {
	userID := auth.UserID(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages array is required"})
		return
	}

	hasSystem := false
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			hasSystem = true
		case "user", "assistant":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "message role must be user, assistant or system"})
			return
		}
		if strings.TrimSpace(m.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message content must not be empty"})
			return
		}
	}

	if !h.client.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "assistant API key not configured",
			"message": "The AI assistant is not configured yet. Ask your administrator to set an API key.",
		})
		return
	}

	if !h.limiter(userID).Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "rate limit exceeded",
			"message": "Too many requests, slow down a little.",
		})
		return
	}

	messages := req.Messages
	if !hasSystem {
		messages = append([]llm.Message{{Role: "system", Content: systemPrompt}}, messages...)
	}

	content, err := h.client.CreateCompletion(c.Request.Context(), messages)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "assistant API key not configured",
				"message": "The AI assistant is not configured yet. Ask your administrator to set an API key.",
			})
		case errors.Is(err, llm.ErrRateLimited):
			metrics.IncrementChatCompletion("rate_limited")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "provider quota exceeded",
				"message": "The AI assistant is temporarily unavailable due to usage limits. Try again shortly.",
			})
		default:
			metrics.IncrementChatCompletion("failed")
			h.log.Error("chat completion failed", zap.Int("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "chat completion failed",
				"message": "Failed to get an AI response. Please try again.",
			})
		}
		return
	}

	metrics.IncrementChatCompletion("success")
	c.JSON(http.StatusOK, gin.H{"message": chatMessage{
		Role:      "assistant",
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}})
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}
