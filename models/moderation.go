package models

import (
	"fmt"
	"strings"
	"time"
)

// ModerationStatus is the outcome recorded by a moderator's review
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
	ModerationDisputed ModerationStatus = "disputed"
)

const (
	// DefaultRejectReason applies to a single reject without a reason code
	DefaultRejectReason = "inappropriate"
	// DefaultBatchRejectReason applies to a batch reject without a reason code
	DefaultBatchRejectReason = "rejected"
)

// ContentModeration is one ledger row for a (table, record) pair
type ContentModeration struct {
	ID             int64            `json:"id"`
	TableName      Table            `json:"table_name"`
	RecordID       int64            `json:"record_id"`
	Status         ModerationStatus `json:"status"`
	ModeratorID    *int64           `json:"moderator_id,omitempty"`
	ReasonCode     string           `json:"reason_code,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	DisputedBy     string           `json:"disputed_by,omitempty"`
	DisputeReason  string           `json:"dispute_reason,omitempty"`
	DisputeDate    *time.Time       `json:"dispute_date,omitempty"`
	ResolutionDate *time.Time       `json:"resolution_date,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// RejectForm carries the optional reason code of a single reject
type RejectForm struct {
	Reason string `json:"reason,omitempty"`
}

// Validate validates the reject request
func (f *RejectForm) Validate() []string {
	var errors []string

	if len(f.Reason) > 50 {
		errors = append(errors, "Reason code must be less than 50 characters")
	}

	return errors
}

// BatchForm represents a batch moderation request
type BatchForm struct {
	TableName string  `json:"table_name"`
	RecordIDs []int64 `json:"record_ids"`
	Reason    string  `json:"reason,omitempty"`
}

// Validate validates the batch request
func (f *BatchForm) Validate() []string {
	var errors []string

	if f.TableName == "" || len(f.RecordIDs) == 0 {
		errors = append(errors, "Missing parameters")
		return errors
	}

	if _, err := ParseEntityKind(f.TableName); err != nil {
		errors = append(errors, "Invalid record type")
	}

	if len(f.Reason) > 50 {
		errors = append(errors, "Reason code must be less than 50 characters")
	}

	return errors
}

// Kind returns the parsed entity kind. Call Validate first.
func (f *BatchForm) Kind() EntityKind {
	kind, _ := ParseEntityKind(f.TableName)
	return kind
}

// BatchResult reports how many records a batch action processed
type BatchResult struct {
	Kind      EntityKind `json:"table_name"`
	Processed int        `json:"processed"`
	Requested int        `json:"requested"`
}

// BatchSummary renders the aggregate audit value for a batch action
func BatchSummary(action AuditAction, n int) string {
	switch action {
	case ActionBatchApprove:
		return fmt.Sprintf("Approved %d records", n)
	case ActionBatchReject:
		return fmt.Sprintf("Rejected %d records", n)
	}
	return fmt.Sprintf("Processed %d records", n)
}

// NormalizeReason trims a reason code, substituting def when empty
func NormalizeReason(reason, def string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return def
	}
	return reason
}

// ReviewRecord is the moderator's view of a single moderatable record
type ReviewRecord struct {
	Kind        EntityKind          `json:"table_name"`
	RecordID    int64               `json:"record_id"`
	Verified    bool                `json:"verified"`
	Record      any                 `json:"record"`
	Moderations []ContentModeration `json:"moderations"`
	Disputes    []Dispute           `json:"disputes"`
}
