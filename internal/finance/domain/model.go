package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
)

// Transaction is a signed money movement. Amount is always stored positive;
// Type ("income" or "expense") carries the sign.
type Transaction struct {
	ID            int       `json:"id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Category      *string   `json:"category,omitempty"`
	Date          time.Time `json:"date"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UserID        int       `json:"userId"`
}

type NewTransaction struct {
	Description   string
	Amount        float64
	Type          string
	Category      *string
	Date          time.Time
	PaymentMethod *string
	Status        string
	Notes         *string
	UserID        int
}

type TransactionPatch struct {
	Description   *string
	Amount        *float64
	Type          *string
	Category      *string
	Date          *time.Time
	PaymentMethod *string
	Status        *string
	Notes         *string
}

// Invoice line items are an opaque JSON array; the server stores and
// returns them verbatim.
type Invoice struct {
	ID        int             `json:"id"`
	ClientID  int             `json:"clientId"`
	Amount    float64         `json:"amount"`
	Status    string          `json:"status"`
	IssueDate time.Time       `json:"issueDate"`
	DueDate   time.Time       `json:"dueDate"`
	Items     json.RawMessage `json:"items,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UserID    int             `json:"userId"`
}

type NewInvoice struct {
	ClientID  int
	Amount    float64
	Status    string
	IssueDate time.Time
	DueDate   time.Time
	Items     json.RawMessage
	Notes     *string
	UserID    int
}

type InvoicePatch struct {
	ClientID  *int
	Amount    *float64
	Status    *string
	IssueDate *time.Time
	DueDate   *time.Time
	Items     json.RawMessage
	Notes     *string
}
