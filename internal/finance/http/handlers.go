package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/finance/domain"
)

type createTransactionReq struct {
	Description   string     `json:"description"`
	Amount        *float64   `json:"amount"`
	Type          string     `json:"type"`
	Category      *string    `json:"category"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"paymentMethod"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes"`
}

func (h *Handler) createTransaction(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Description) == "" || req.Amount == nil || req.Date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description, amount and date are required"})
		return
	}
	if req.Type != "income" && req.Type != "expense" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return
	}
	if req.Status == "" {
		req.Status = "completed"
	}

	t, err := h.transactions.Create(c.Request.Context(), domain.NewTransaction{
		Description:   strings.TrimSpace(req.Description),
		Amount:        *req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Date:          *req.Date,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Notes:         req.Notes,
		UserID:        auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) listTransactions(c *gin.Context) {
	items, err := h.transactions.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.transactions.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		h.log.Error("get transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}
	c.JSON(http.StatusOK, t)
}

type updateTransactionReq struct {
	Description   *string    `json:"description"`
	Amount        *float64   `json:"amount"`
	Type          *string    `json:"type"`
	Category      *string    `json:"category"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"paymentMethod"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
}

func (h *Handler) updateTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Type != nil && *req.Type != "income" && *req.Type != "expense" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return
	}

	t, err := h.transactions.Update(c.Request.Context(), id, auth.UserID(c), domain.TransactionPatch{
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		h.log.Error("update transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transaction"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		h.log.Error("delete transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type createInvoiceReq struct {
	ClientID  int             `json:"clientId"`
	Amount    *float64        `json:"amount"`
	Status    string          `json:"status"`
	IssueDate *time.Time      `json:"issueDate"`
	DueDate   *time.Time      `json:"dueDate"`
	Items     json.RawMessage `json:"items"`
	Notes     *string         `json:"notes"`
}

func (h *Handler) createInvoice(c *gin.Context) {
	var req createInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.ClientID <= 0 || req.Amount == nil || req.IssueDate == nil || req.DueDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientId, amount, issueDate and dueDate are required"})
		return
	}
	if req.Status == "" {
		req.Status = "unpaid"
	}

	inv, err := h.invoices.Create(c.Request.Context(), domain.NewInvoice{
		ClientID:  req.ClientID,
		Amount:    *req.Amount,
		Status:    req.Status,
		IssueDate: *req.IssueDate,
		DueDate:   *req.DueDate,
		Items:     req.Items,
		Notes:     req.Notes,
		UserID:    auth.UserID(c),
	})
	if err != nil {
		h.log.Error("create invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *Handler) listInvoices(c *gin.Context) {
	items, err := h.invoices.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.log.Error("list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoices"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	inv, err := h.invoices.GetByID(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		h.log.Error("get invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

type updateInvoiceReq struct {
	ClientID  *int            `json:"clientId"`
	Amount    *float64        `json:"amount"`
	Status    *string         `json:"status"`
	IssueDate *time.Time      `json:"issueDate"`
	DueDate   *time.Time      `json:"dueDate"`
	Items     json.RawMessage `json:"items"`
	Notes     *string         `json:"notes"`
}

func (h *Handler) updateInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	inv, err := h.invoices.Update(c.Request.Context(), id, auth.UserID(c), domain.InvoicePatch{
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Status:    req.Status,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Items:     req.Items,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		h.log.Error("update invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) deleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		h.log.Error("delete invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
