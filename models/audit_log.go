package models

import "time"

// AuditAction tags the kind of state change an audit entry documents
type AuditAction string

const (
	ActionCreate       AuditAction = "create"
	ActionUpdate       AuditAction = "update"
	ActionDelete       AuditAction = "delete"
	ActionView         AuditAction = "view"
	ActionApprove      AuditAction = "approve"
	ActionReject       AuditAction = "reject"
	ActionDispute      AuditAction = "dispute"
	ActionBatchApprove AuditAction = "batch_approve"
	ActionBatchReject  AuditAction = "batch_reject"
)

// AuditLogEntry is an append-only record of one state change
type AuditLogEntry struct {
	ID        int64       `json:"id"`
	TableName Table       `json:"table_name"`
	RecordID  int64       `json:"record_id"`
	Action    AuditAction `json:"action"`
	FieldName *string     `json:"field_name,omitempty"`
	OldValue  *string     `json:"old_value,omitempty"`
	NewValue  *string     `json:"new_value,omitempty"`
	IPAddress string      `json:"ip_address"`
	UserAgent string      `json:"user_agent"`
	UserID    *int64      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// AuditChange describes the optional field-level detail of an audit entry
type AuditChange struct {
	Field    string
	OldValue string
	NewValue string
}

// AuditFilter narrows an audit log listing. Zero values match everything.
type AuditFilter struct {
	Table    Table       `json:"table_name,omitempty"`
	RecordID *int64      `json:"record_id,omitempty"`
	Action   AuditAction `json:"action,omitempty"`
	UserID   *int64      `json:"user_id,omitempty"`
	Page
}
