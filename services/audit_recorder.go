package services

import (
	"context"
	"fmt"
	"time"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/userctx"
)

// AuditRecorder appends audit log entries. Requester IP and user agent are read
// from the request context, so callers only describe the action itself.
type AuditRecorder struct {
	now func() time.Time
}

// NewAuditRecorder creates a recorder stamping entries with the current UTC time
func NewAuditRecorder() *AuditRecorder {
	return &AuditRecorder{now: func() time.Time { return time.Now().UTC() }}
}

// Record appends one entry through repo, which is usually bound to the
// transaction of the action being documented. A nil actor records an
// anonymous action.
func (a *AuditRecorder) Record(ctx context.Context, repo repositories.AuditRepository, target models.RecordRef,
	action models.AuditAction, change models.AuditChange, actor *models.Actor) error {

	info := userctx.GetRequestInfo(ctx)
	entry := &models.AuditLogEntry{
		TableName: target.Table,
		RecordID:  target.ID,
		Action:    action,
		FieldName: optional(change.Field),
		OldValue:  optional(change.OldValue),
		NewValue:  optional(change.NewValue),
		IPAddress: info.IPAddress,
		UserAgent: info.UserAgent,
		UserID:    actor.ID(),
		Timestamp: a.now(),
	}

	if err := repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s on %s: %w", action, target, err)
	}

	log.Debug("audit entry recorded", "action", action, "target", target.String(), "ip", info.IPAddress)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
