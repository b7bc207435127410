package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/payments/paypal"
)

type Handler struct {
	client *paypal.Client
	log    *zap.Logger
}

func New(client *paypal.Client, log *zap.Logger) *Handler {
	return &Handler{client: client, log: log}
}

type createOrderRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}
	if v, err := strconv.ParseFloat(req.Amount, 64); err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number"})
		return
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	order, err := h.client.CreateOrder(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		h.respondError(c, err, "create order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) captureOrder(c *gin.Context) {
	orderID := c.Param("orderID")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
		return
	}

	order, err := h.client.CaptureOrder(c.Request.Context(), orderID)
	if err != nil {
		h.respondError(c, err, "capture order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) respondError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, paypal.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not configured"})
	case errors.Is(err, paypal.ErrProvider):
		h.log.Warn("payment provider error", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider is unavailable"})
	default:
		h.log.Error("payment request failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment request failed"})
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/order", h.createOrder)
	rg.POST("/order/:orderID/capture", h.captureOrder)
}
