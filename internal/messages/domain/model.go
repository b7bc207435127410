package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("message not found")

type Message struct {
	ID          int       `json:"id"`
	SenderID    int       `json:"senderId"`
	RecipientID int       `json:"recipientId"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	SentAt      time.Time `json:"sentAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewMessage struct {
	SenderID    int
	RecipientID int
	Content     string
}
