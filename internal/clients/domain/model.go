package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("client not found")

type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Company   *string   `json:"company,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    int       `json:"userId"`
}

type NewClient struct {
	Name    string
	Company *string
	Email   *string
	Phone   *string
	Address *string
	Status  string
	Notes   *string
	UserID  int
}

type ClientPatch struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Address *string
	Status  *string
	Notes   *string
}
