package models

import (
	"strings"
	"time"
)

// DisputeType enumerates the grounds for a dispute
type DisputeType string

const (
	DisputeFactualError     DisputeType = "factual_error"
	DisputePrivacyViolation DisputeType = "privacy_violation"
	DisputeHarassment       DisputeType = "harassment"
	DisputeInappropriate    DisputeType = "inappropriate"
	DisputeDuplicate        DisputeType = "duplicate"
	DisputeOther            DisputeType = "other"
)

var disputeTypes = map[DisputeType]bool{
	DisputeFactualError:     true,
	DisputePrivacyViolation: true,
	DisputeHarassment:       true,
	DisputeInappropriate:    true,
	DisputeDuplicate:        true,
	DisputeOther:            true,
}

// Valid reports whether t is a known dispute type
func (t DisputeType) Valid() bool {
	return disputeTypes[t]
}

// DisputeStatus is the lifecycle state of a dispute
type DisputeStatus string

const (
	DisputePending     DisputeStatus = "pending"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeDismissed   DisputeStatus = "dismissed"
)

// Valid reports whether s is a known status
func (s DisputeStatus) Valid() bool {
	switch s {
	case DisputePending, DisputeUnderReview, DisputeResolved, DisputeDismissed:
		return true
	}
	return false
}

// IsFinal reports whether the status ends the dispute
func (s DisputeStatus) IsFinal() bool {
	return s == DisputeResolved || s == DisputeDismissed
}

// Dispute is a third-party complaint against a record
type Dispute struct {
	ID               int64         `json:"id"`
	TableName        Table         `json:"table_name"`
	RecordID         int64         `json:"record_id"`
	DisputeType      DisputeType   `json:"dispute_type"`
	Description      string        `json:"description"`
	DisputerName     string        `json:"disputer_name,omitempty"`
	DisputerEmail    string        `json:"disputer_email,omitempty"`
	DisputerPhone    string        `json:"disputer_phone,omitempty"`
	EvidenceProvided string        `json:"evidence_provided,omitempty"`
	Status           DisputeStatus `json:"status"`
	Resolution       string        `json:"resolution,omitempty"`
	ModeratorID      *int64        `json:"moderator_id,omitempty"`
	ResolutionDate   *time.Time    `json:"resolution_date,omitempty"`
	IPAddress        string        `json:"ip_address,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// Target returns the disputed record
func (d *Dispute) Target() RecordRef {
	return RecordRef{Table: d.TableName, ID: d.RecordID}
}

// DisputeFilter narrows a dispute listing
type DisputeFilter struct {
	Status DisputeStatus `json:"status,omitempty"`
	Page
}

// DisputeForm represents a dispute submitted by a member of the public
type DisputeForm struct {
	TableName        string `json:"table_name"`
	RecordID         int64  `json:"record_id"`
	DisputeType      string `json:"dispute_type"`
	Description      string `json:"description"`
	DisputerName     string `json:"disputer_name"`
	DisputerEmail    string `json:"disputer_email"`
	DisputerPhone    string `json:"disputer_phone"`
	EvidenceProvided string `json:"evidence_provided"`
}

// Validate validates the dispute form data
func (f *DisputeForm) Validate() []string {
	var errors []string

	if _, err := ParseTable(f.TableName); err != nil {
		errors = append(errors, "Invalid record type")
	}

	if f.RecordID <= 0 {
		errors = append(errors, "Record ID is required")
	}

	if !DisputeType(f.DisputeType).Valid() {
		errors = append(errors, "Dispute type is invalid")
	}

	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, "Description is required")
	}

	if len(f.DisputerName) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if f.DisputerEmail != "" && (len(f.DisputerEmail) > 100 || !isValidEmail(f.DisputerEmail)) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.DisputerPhone) > 20 {
		errors = append(errors, "Phone must be less than 20 characters")
	}

	return errors
}

// ResolveForm represents a moderator's resolution of a dispute
type ResolveForm struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

// Validate validates the resolution form data
func (f *ResolveForm) Validate() []string {
	var errors []string

	status := DisputeStatus(f.Status)
	if !status.IsFinal() {
		errors = append(errors, "Status must be resolved or dismissed")
	}

	return errors
}
