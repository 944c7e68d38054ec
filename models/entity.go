package models

import (
	"fmt"
	"strings"
)

// Table names a record type that can be addressed by the audit log
type Table string

const (
	TableOfficers         Table = "officers"
	TableIncidents        Table = "incidents"
	TableEvidence         Table = "evidence"
	TableCommunityReports Table = "community_reports"
	TableUsers            Table = "users"
	TableDisputes         Table = "disputes"
	TableModeration       Table = "content_moderation"
)

// DisputableTables lists every table a dispute may target
var DisputableTables = []Table{
	TableOfficers,
	TableIncidents,
	TableEvidence,
	TableCommunityReports,
}

// ParseTable validates the target table of a dispute
func ParseTable(s string) (Table, error) {
	s = strings.TrimSpace(s)
	for _, t := range DisputableTables {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown record type: %q", s)
}

// RecordRef is an untyped (table, id) pair
type RecordRef struct {
	Table Table `json:"table_name"`
	ID    int64 `json:"record_id"`
}

func (r RecordRef) String() string {
	return fmt.Sprintf("%s:%d", r.Table, r.ID)
}

// EntityKind enumerates the record types that carry a verified flag
type EntityKind string

const (
	KindIncident        EntityKind = "incidents"
	KindEvidence        EntityKind = "evidence"
	KindCommunityReport EntityKind = "community_reports"
)

// ModeratableKinds lists every kind subject to verification
var ModeratableKinds = []EntityKind{KindIncident, KindEvidence, KindCommunityReport}

// ParseEntityKind validates a moderatable record type tag
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(strings.TrimSpace(s)) {
	case KindIncident:
		return KindIncident, nil
	case KindEvidence:
		return KindEvidence, nil
	case KindCommunityReport:
		return KindCommunityReport, nil
	}
	return "", fmt.Errorf("invalid record type: %q", s)
}

// Table returns the table backing the kind
func (k EntityKind) Table() Table {
	return Table(k)
}

// EntityRef addresses one moderatable record. It is implemented only by the
// id types in this file, so a type switch over it is exhaustive.
type EntityRef interface {
	Kind() EntityKind
	RecordID() int64
	Record() RecordRef
	isEntityRef()
}

// IncidentID references a row in incidents
type IncidentID int64

// EvidenceID references a row in evidence
type EvidenceID int64

// CommunityReportID references a row in community_reports
type CommunityReportID int64

func (id IncidentID) Kind() EntityKind { return KindIncident }
func (id IncidentID) RecordID() int64  { return int64(id) }
func (id IncidentID) Record() RecordRef {
	return RecordRef{Table: TableIncidents, ID: int64(id)}
}
func (IncidentID) isEntityRef() {}

func (id EvidenceID) Kind() EntityKind { return KindEvidence }
func (id EvidenceID) RecordID() int64  { return int64(id) }
func (id EvidenceID) Record() RecordRef {
	return RecordRef{Table: TableEvidence, ID: int64(id)}
}
func (EvidenceID) isEntityRef() {}

func (id CommunityReportID) Kind() EntityKind { return KindCommunityReport }
func (id CommunityReportID) RecordID() int64  { return int64(id) }
func (id CommunityReportID) Record() RecordRef {
	return RecordRef{Table: TableCommunityReports, ID: int64(id)}
}
func (CommunityReportID) isEntityRef() {}

// NewEntityRef builds a typed reference from a kind and a numeric id
func NewEntityRef(kind EntityKind, id int64) (EntityRef, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid record ID: %d", id)
	}
	switch kind {
	case KindIncident:
		return IncidentID(id), nil
	case KindEvidence:
		return EvidenceID(id), nil
	case KindCommunityReport:
		return CommunityReportID(id), nil
	}
	return nil, fmt.Errorf("invalid record type: %q", kind)
}
