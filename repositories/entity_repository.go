package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/badapples/registry/models"
)

// EntityRepository owns the content tables and their verified flag
type EntityRepository interface {
	SetVerified(ctx context.Context, ref models.EntityRef, verified bool) error
	IsVerified(ctx context.Context, ref models.EntityRef) (bool, error)
	Exists(ctx context.Context, ref models.RecordRef) (bool, error)
	Get(ctx context.Context, ref models.EntityRef) (any, error)
	CountUnverified(ctx context.Context, kind models.EntityKind) (int, error)

	CreateOfficer(ctx context.Context, officer *models.Officer) error
	CreateIncident(ctx context.Context, incident *models.Incident) error
	CreateEvidence(ctx context.Context, evidence *models.Evidence) error
	CreateCommunityReport(ctx context.Context, report *models.CommunityReport) error
}

// entityRepository implements EntityRepository interface
type entityRepository struct {
	db DBTX
}

// NewEntityRepository creates a new entity repository
func NewEntityRepository(db DBTX) EntityRepository {
	return &entityRepository{db: db}
}

// verifiedTable maps a moderatable reference to its table. The switch covers
// every EntityRef implementation.
func verifiedTable(ref models.EntityRef) (string, error) {
	switch ref.(type) {
	case models.IncidentID:
		return "incidents", nil
	case models.EvidenceID:
		return "evidence", nil
	case models.CommunityReportID:
		return "community_reports", nil
	}
	return "", fmt.Errorf("unsupported entity reference %T", ref)
}

// existsQueries holds the lookup for every table a RecordRef may name
var existsQueries = map[models.Table]string{
	models.TableOfficers:         `SELECT 1 FROM officers WHERE id = ?`,
	models.TableIncidents:        `SELECT 1 FROM incidents WHERE id = ?`,
	models.TableEvidence:         `SELECT 1 FROM evidence WHERE id = ?`,
	models.TableCommunityReports: `SELECT 1 FROM community_reports WHERE id = ?`,
	models.TableUsers:            `SELECT 1 FROM users WHERE id = ?`,
	models.TableDisputes:         `SELECT 1 FROM disputes WHERE id = ?`,
}

// SetVerified writes the verification flag of one record
func (r *entityRepository) SetVerified(ctx context.Context, ref models.EntityRef, verified bool) error {
	table, err := verifiedTable(ref)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `UPDATE `+table+` SET verified = ? WHERE id = ?`, verified, ref.RecordID())
	if err != nil {
		return models.StoreError("failed to update verification", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.StoreError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return &models.NotFoundError{Resource: table, ID: ref.RecordID()}
	}

	return nil
}

// IsVerified reads the verification flag of one record
func (r *entityRepository) IsVerified(ctx context.Context, ref models.EntityRef) (bool, error) {
	table, err := verifiedTable(ref)
	if err != nil {
		return false, err
	}

	var verified bool
	err = r.db.QueryRowContext(ctx, `SELECT verified FROM `+table+` WHERE id = ?`, ref.RecordID()).Scan(&verified)
	if errors.Is(err, sql.ErrNoRows) {
		return false, &models.NotFoundError{Resource: table, ID: ref.RecordID()}
	}
	if err != nil {
		return false, models.StoreError("failed to get verification", err)
	}

	return verified, nil
}

// Exists reports whether the referenced record is present
func (r *entityRepository) Exists(ctx context.Context, ref models.RecordRef) (bool, error) {
	query, ok := existsQueries[ref.Table]
	if !ok {
		return false, fmt.Errorf("unknown record type: %q", ref.Table)
	}

	var one int
	err := r.db.QueryRowContext(ctx, query, ref.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, models.StoreError("failed to look up record", err)
	}

	return true, nil
}

// Get loads the referenced record as *Incident, *Evidence or *CommunityReport
func (r *entityRepository) Get(ctx context.Context, ref models.EntityRef) (any, error) {
	switch id := ref.(type) {
	case models.IncidentID:
		return r.getIncident(ctx, int64(id))
	case models.EvidenceID:
		return r.getEvidence(ctx, int64(id))
	case models.CommunityReportID:
		return r.getCommunityReport(ctx, int64(id))
	}
	return nil, fmt.Errorf("unsupported entity reference %T", ref)
}

// CountUnverified returns the number of records of kind awaiting review
func (r *entityRepository) CountUnverified(ctx context.Context, kind models.EntityKind) (int, error) {
	if _, err := models.ParseEntityKind(string(kind)); err != nil {
		return 0, err
	}
	table := string(kind.Table())

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE verified = 0`).Scan(&count); err != nil {
		return 0, models.StoreError("failed to count unverified "+table, err)
	}

	return count, nil
}

// CreateOfficer creates a new officer
func (r *entityRepository) CreateOfficer(ctx context.Context, officer *models.Officer) error {
	query := `
		INSERT INTO officers (badge_number, first_name, last_name, middle_name, current_rank,
		                      hire_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	officer.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		officer.BadgeNumber,
		officer.FirstName,
		officer.LastName,
		officer.MiddleName,
		officer.Rank,
		officer.HireDate,
		officer.Status,
		officer.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create officer", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	officer.ID = id
	return nil
}

// CreateIncident creates a new, unverified incident
func (r *entityRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (officer_id, incident_date, incident_type, description, location,
		                       outcome, charges_filed, settlement_amount, case_number, source,
		                       source_url, verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`

	incident.Verified = false
	incident.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		incident.OfficerID,
		incident.IncidentDate,
		incident.IncidentType,
		incident.Description,
		incident.Location,
		incident.Outcome,
		incident.ChargesFiled,
		incident.SettlementAmount,
		incident.CaseNumber,
		incident.Source,
		incident.SourceURL,
		incident.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create incident", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	incident.ID = id
	return nil
}

// CreateEvidence creates a new, unverified evidence row
func (r *entityRepository) CreateEvidence(ctx context.Context, evidence *models.Evidence) error {
	query := `
		INSERT INTO evidence (officer_id, incident_id, evidence_type, file_path, file_name,
		                      file_size, mime_type, description, source, uploader_name,
		                      uploader_email, verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`

	evidence.Verified = false
	evidence.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		evidence.OfficerID,
		evidence.IncidentID,
		evidence.EvidenceType,
		evidence.FilePath,
		evidence.FileName,
		evidence.FileSize,
		evidence.MimeType,
		evidence.Description,
		evidence.Source,
		evidence.UploaderName,
		evidence.UploaderEmail,
		evidence.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create evidence", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	evidence.ID = id
	return nil
}

// CreateCommunityReport creates a new, unverified community report
func (r *entityRepository) CreateCommunityReport(ctx context.Context, report *models.CommunityReport) error {
	query := `
		INSERT INTO community_reports (incident_id, reporter_name, reporter_email, reporter_phone,
		                               report_type, description, incident_date, location,
		                               contact_ok, verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`

	report.Verified = false
	report.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		report.IncidentID,
		report.ReporterName,
		report.ReporterEmail,
		report.ReporterPhone,
		report.ReportType,
		report.Description,
		report.IncidentDate,
		report.Location,
		report.ContactOK,
		report.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create community report", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	report.ID = id
	return nil
}

func (r *entityRepository) getIncident(ctx context.Context, id int64) (*models.Incident, error) {
	query := `
		SELECT id, officer_id, incident_date, incident_type, description, location, outcome,
		       charges_filed, settlement_amount, case_number, source, source_url, verified, created_at
		FROM incidents
		WHERE id = ?
	`

	var incident models.Incident
	var settlement sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&incident.ID,
		&incident.OfficerID,
		&incident.IncidentDate,
		&incident.IncidentType,
		&incident.Description,
		&incident.Location,
		&incident.Outcome,
		&incident.ChargesFiled,
		&settlement,
		&incident.CaseNumber,
		&incident.Source,
		&incident.SourceURL,
		&incident.Verified,
		&incident.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "incidents", ID: id}
	}
	if err != nil {
		return nil, models.StoreError("failed to get incident", err)
	}

	if settlement.Valid {
		incident.SettlementAmount = &settlement.Float64
	}
	return &incident, nil
}

func (r *entityRepository) getEvidence(ctx context.Context, id int64) (*models.Evidence, error) {
	query := `
		SELECT id, officer_id, incident_id, evidence_type, file_path, file_name, file_size,
		       mime_type, description, source, uploader_name, uploader_email, verified, created_at
		FROM evidence
		WHERE id = ?
	`

	var evidence models.Evidence
	var incidentID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&evidence.ID,
		&evidence.OfficerID,
		&incidentID,
		&evidence.EvidenceType,
		&evidence.FilePath,
		&evidence.FileName,
		&evidence.FileSize,
		&evidence.MimeType,
		&evidence.Description,
		&evidence.Source,
		&evidence.UploaderName,
		&evidence.UploaderEmail,
		&evidence.Verified,
		&evidence.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "evidence", ID: id}
	}
	if err != nil {
		return nil, models.StoreError("failed to get evidence", err)
	}

	evidence.IncidentID = int64Ptr(incidentID)
	return &evidence, nil
}

func (r *entityRepository) getCommunityReport(ctx context.Context, id int64) (*models.CommunityReport, error) {
	query := `
		SELECT id, incident_id, reporter_name, reporter_email, reporter_phone, report_type,
		       description, incident_date, location, contact_ok, verified, created_at
		FROM community_reports
		WHERE id = ?
	`

	var report models.CommunityReport
	var incidentID sql.NullInt64
	var incidentDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&incidentID,
		&report.ReporterName,
		&report.ReporterEmail,
		&report.ReporterPhone,
		&report.ReportType,
		&report.Description,
		&incidentDate,
		&report.Location,
		&report.ContactOK,
		&report.Verified,
		&report.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "community_reports", ID: id}
	}
	if err != nil {
		return nil, models.StoreError("failed to get community report", err)
	}

	report.IncidentID = int64Ptr(incidentID)
	report.IncidentDate = timePtr(incidentDate)
	return &report, nil
}
