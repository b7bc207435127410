package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/auth"
	"github.com/creatorpro/backend/internal/finance/domain"
)

type fakeTransactions struct {
	nextID int
	items  map[int]domain.Transaction
}

func (f *fakeTransactions) List(_ context.Context, userID int) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range f.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactions) GetByID(_ context.Context, id, userID int) (*domain.Transaction, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return &t, nil
}

func (f *fakeTransactions) Create(_ context.Context, n domain.NewTransaction) (*domain.Transaction, error) {
	t := domain.Transaction{
		ID:          f.nextID,
		Description: n.Description,
		Amount:      n.Amount,
		Type:        n.Type,
		Date:        n.Date,
		Status:      n.Status,
		UserID:      n.UserID,
	}
	f.nextID++
	f.items[t.ID] = t
	return &t, nil
}

func (f *fakeTransactions) Update(_ context.Context, id, userID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	f.items[id] = t
	return &t, nil
}

func (f *fakeTransactions) Delete(_ context.Context, id, userID int) error {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeInvoices struct {
	nextID int
	items  map[int]domain.Invoice
}

func (f *fakeInvoices) List(_ context.Context, userID int) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	for _, inv := range f.items {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoices) GetByID(_ context.Context, id, userID int) (*domain.Invoice, error) {
	inv, ok := f.items[id]
	if !ok || inv.UserID != userID {
		return nil, domain.ErrInvoiceNotFound
	}
	return &inv, nil
}

func (f *fakeInvoices) Create(_ context.Context, n domain.NewInvoice) (*domain.Invoice, error) {
	inv := domain.Invoice{
		ID:        f.nextID,
		ClientID:  n.ClientID,
		Amount:    n.Amount,
		Status:    n.Status,
		IssueDate: n.IssueDate,
		DueDate:   n.DueDate,
		Items:     n.Items,
		Notes:     n.Notes,
		UserID:    n.UserID,
	}
	f.nextID++
	f.items[inv.ID] = inv
	return &inv, nil
}

func (f *fakeInvoices) Update(_ context.Context, id, userID int, patch domain.InvoicePatch) (*domain.Invoice, error) {
	inv, ok := f.items[id]
	if !ok || inv.UserID != userID {
		return nil, domain.ErrInvoiceNotFound
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.Items != nil {
		inv.Items = patch.Items
	}
	f.items[id] = inv
	return &inv, nil
}

func (f *fakeInvoices) Delete(_ context.Context, id, userID int) error {
	inv, ok := f.items[id]
	if !ok || inv.UserID != userID {
		return domain.ErrInvoiceNotFound
	}
	delete(f.items, id)
	return nil
}

func setup() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.CtxUserID, 1) })
	h := New(
		&fakeTransactions{nextID: 1, items: map[int]domain.Transaction{}},
		&fakeInvoices{nextID: 1, items: map[int]domain.Invoice{}},
		zap.NewNop(),
	)
	h.Register(r.Group("/api/transactions"), r.Group("/api/invoices"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTransaction(t *testing.T) {
	r := setup()

	w := do(r, http.MethodPost, "/api/transactions",
		`{"description":"Logo deposit","amount":1200,"type":"income","date":"2025-03-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var tx domain.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tx))
	assert.Equal(t, 1200.0, tx.Amount)
	assert.Equal(t, "completed", tx.Status, "status defaults to completed")
}

func TestCreateTransactionRejectsUnknownType(t *testing.T) {
	r := setup()

	w := do(r, http.MethodPost, "/api/transactions",
		`{"description":"x","amount":10,"type":"transfer","date":"2025-03-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/transactions", `{"amount":10,"type":"income"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvoiceRoundTripsItems(t *testing.T) {
	r := setup()

	body := `{"clientId":7,"amount":1200,"issueDate":"2025-03-01T00:00:00Z","dueDate":"2025-03-15T00:00:00Z",` +
		`"items":[{"description":"Logo design","quantity":1,"rate":800},{"description":"Landing page","quantity":1,"rate":400}]}`
	w := do(r, http.MethodPost, "/api/invoices", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var inv domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, "unpaid", inv.Status, "status defaults to unpaid")
	assert.Equal(t, 1200.0, inv.Amount)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(inv.Items, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Logo design", items[0]["description"])
	assert.Equal(t, "Landing page", items[1]["description"])
}

func TestCreateInvoiceValidation(t *testing.T) {
	r := setup()

	w := do(r, http.MethodPost, "/api/invoices", `{"amount":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceNotFound(t *testing.T) {
	r := setup()

	w := do(r, http.MethodGet, "/api/invoices/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkInvoicePaid(t *testing.T) {
	r := setup()

	w := do(r, http.MethodPost, "/api/invoices",
		`{"clientId":7,"amount":500,"issueDate":"2025-03-01T00:00:00Z","dueDate":"2025-03-15T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var inv domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))

	w = do(r, http.MethodPatch, "/api/invoices/1", `{"status":"paid"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paid"`)
}
