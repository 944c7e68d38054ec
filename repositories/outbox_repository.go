package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/badapples/registry/models"
)

// OutboxRepository queues notifications for the delivery worker
type OutboxRepository interface {
	Enqueue(ctx context.Context, n models.Notification) (*models.OutboxMessage, error)
	ListPending(ctx context.Context, limit int) ([]models.OutboxMessage, error)
	MarkDelivered(ctx context.Context, id int64, status models.OutboxStatus) error
	MarkAttempt(ctx context.Context, id int64, errMsg string, failed bool) error
}

// outboxRepository implements OutboxRepository interface
type outboxRepository struct {
	db DBTX
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db DBTX) OutboxRepository {
	return &outboxRepository{db: db}
}

// Enqueue stores a pending notification. Recipients are stored as a JSON array.
func (r *outboxRepository) Enqueue(ctx context.Context, n models.Notification) (*models.OutboxMessage, error) {
	recipients, err := json.Marshal(n.Recipients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipients: %w", err)
	}

	msg := &models.OutboxMessage{
		Notification: n,
		Status:       models.OutboxPending,
		CreatedAt:    time.Now().UTC(),
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_outbox (subject, recipients, body, status, attempts, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, n.Subject, string(recipients), n.Body, msg.Status, msg.CreatedAt)
	if err != nil {
		return nil, models.StoreError("failed to enqueue notification", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, models.StoreError("failed to get inserted ID", err)
	}

	msg.ID = id
	return msg, nil
}

// ListPending returns up to limit pending messages, oldest first
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]models.OutboxMessage, error) {
	query := `
		SELECT id, subject, recipients, body, status, attempts, last_error, created_at, delivered_at
		FROM notification_outbox
		WHERE status = ?
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, models.OutboxPending, limit)
	if err != nil {
		return nil, models.StoreError("failed to query outbox", err)
	}
	defer rows.Close()

	var messages []models.OutboxMessage
	for rows.Next() {
		var msg models.OutboxMessage
		var recipients string
		var deliveredAt sql.NullTime

		err := rows.Scan(
			&msg.ID,
			&msg.Subject,
			&recipients,
			&msg.Body,
			&msg.Status,
			&msg.Attempts,
			&msg.LastError,
			&msg.CreatedAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, models.StoreError("failed to scan outbox message", err)
		}

		if err := json.Unmarshal([]byte(recipients), &msg.Recipients); err != nil {
			return nil, fmt.Errorf("failed to decode recipients of message %d: %w", msg.ID, err)
		}
		msg.DeliveredAt = timePtr(deliveredAt)

		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, models.StoreError("error iterating outbox", err)
	}

	return messages, nil
}

// MarkDelivered closes out a message as sent or skipped
func (r *outboxRepository) MarkDelivered(ctx context.Context, id int64, status models.OutboxStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox
		SET status = ?, attempts = attempts + 1, last_error = '', delivered_at = ?
		WHERE id = ?
	`, status, time.Now().UTC(), id)
	if err != nil {
		return models.StoreError("failed to mark notification delivered", err)
	}
	return nil
}

// MarkAttempt records a failed delivery. When failed is set the message stops retrying.
func (r *outboxRepository) MarkAttempt(ctx context.Context, id int64, errMsg string, failed bool) error {
	status := models.OutboxPending
	if failed {
		status = models.OutboxFailed
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE notification_outbox
		SET status = ?, attempts = attempts + 1, last_error = ?
		WHERE id = ?
	`, status, errMsg, id)
	if err != nil {
		return models.StoreError("failed to record delivery attempt", err)
	}
	return nil
}
