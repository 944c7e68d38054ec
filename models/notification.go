package models

import "time"

// Notification is an outbound message to one or more recipients
type Notification struct {
	Subject    string   `json:"subject"`
	Recipients []string `json:"recipients"`
	Body       string   `json:"body"`
}

// OutboxStatus is the delivery state of a queued notification
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxSkipped OutboxStatus = "skipped"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxMessage is a notification queued in the same transaction as the
// action that produced it
type OutboxMessage struct {
	Notification

	ID          int64        `json:"id"`
	Status      OutboxStatus `json:"status"`
	Attempts    int          `json:"attempts"`
	LastError   string       `json:"last_error,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	DeliveredAt *time.Time   `json:"delivered_at,omitempty"`
}
