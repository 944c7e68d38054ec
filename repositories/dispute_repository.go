package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/badapples/registry/models"
)

// DisputeRepository interface defines dispute database operations
type DisputeRepository interface {
	Create(ctx context.Context, dispute *models.Dispute) error
	GetByID(ctx context.Context, id int64) (*models.Dispute, error)
	Update(ctx context.Context, dispute *models.Dispute) error
	List(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error)
	ListByRecord(ctx context.Context, ref models.RecordRef) ([]models.Dispute, error)
	CountByStatus(ctx context.Context, status models.DisputeStatus) (int, error)
}

// disputeRepository implements DisputeRepository interface
type disputeRepository struct {
	db DBTX
}

// NewDisputeRepository creates a new dispute repository
func NewDisputeRepository(db DBTX) DisputeRepository {
	return &disputeRepository{db: db}
}

const disputeColumns = `
	id, table_name, record_id, dispute_type, description, disputer_name, disputer_email,
	disputer_phone, evidence_provided, status, resolution, moderator_id, resolution_date,
	ip_address, created_at
`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDispute(row rowScanner) (*models.Dispute, error) {
	var d models.Dispute
	var moderatorID sql.NullInt64
	var resolutionDate sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.TableName,
		&d.RecordID,
		&d.DisputeType,
		&d.Description,
		&d.DisputerName,
		&d.DisputerEmail,
		&d.DisputerPhone,
		&d.EvidenceProvided,
		&d.Status,
		&d.Resolution,
		&moderatorID,
		&resolutionDate,
		&d.IPAddress,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.ModeratorID = int64Ptr(moderatorID)
	d.ResolutionDate = timePtr(resolutionDate)
	return &d, nil
}

// Create inserts a new dispute. Status defaults to pending.
func (r *disputeRepository) Create(ctx context.Context, d *models.Dispute) error {
	query := `
		INSERT INTO disputes (table_name, record_id, dispute_type, description, disputer_name,
		                      disputer_email, disputer_phone, evidence_provided, status,
		                      ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if d.Status == "" {
		d.Status = models.DisputePending
	}
	d.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		d.TableName,
		d.RecordID,
		d.DisputeType,
		d.Description,
		d.DisputerName,
		d.DisputerEmail,
		d.DisputerPhone,
		d.EvidenceProvided,
		d.Status,
		d.IPAddress,
		d.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create dispute", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	d.ID = id
	return nil
}

// GetByID retrieves a dispute by ID
func (r *disputeRepository) GetByID(ctx context.Context, id int64) (*models.Dispute, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+disputeColumns+` FROM disputes WHERE id = ?`, id)

	d, err := scanDispute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "dispute", ID: id}
	}
	if err != nil {
		return nil, models.StoreError("failed to get dispute", err)
	}

	return d, nil
}

// Update writes the moderator-controlled fields of a dispute
func (r *disputeRepository) Update(ctx context.Context, d *models.Dispute) error {
	query := `
		UPDATE disputes
		SET status = ?, resolution = ?, moderator_id = ?, resolution_date = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Status,
		d.Resolution,
		d.ModeratorID,
		d.ResolutionDate,
		d.ID,
	)
	if err != nil {
		return models.StoreError("failed to update dispute", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.StoreError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return &models.NotFoundError{Resource: "dispute", ID: d.ID}
	}

	return nil
}

// List retrieves disputes, newest first, optionally filtered by status
func (r *disputeRepository) List(ctx context.Context, filter models.DisputeFilter) ([]models.Dispute, error) {
	page := filter.Page.Normalize()

	query := `SELECT ` + disputeColumns + ` FROM disputes`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY id DESC LIMIT ? OFFSET ?`
	args = append(args, page.Limit, page.Offset)

	return r.query(ctx, query, args...)
}

// ListByRecord retrieves every dispute filed against a record
func (r *disputeRepository) ListByRecord(ctx context.Context, ref models.RecordRef) ([]models.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE table_name = ? AND record_id = ? ORDER BY id ASC`
	return r.query(ctx, query, ref.Table, ref.ID)
}

// CountByStatus returns how many disputes are in the given status
func (r *disputeRepository) CountByStatus(ctx context.Context, status models.DisputeStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM disputes WHERE status = ?`, status).Scan(&count)
	if err != nil {
		return 0, models.StoreError("failed to count disputes", err)
	}
	return count, nil
}

func (r *disputeRepository) query(ctx context.Context, query string, args ...any) ([]models.Dispute, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.StoreError("failed to query disputes", err)
	}
	defer rows.Close()

	var disputes []models.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, models.StoreError("failed to scan dispute", err)
		}
		disputes = append(disputes, *d)
	}

	if err = rows.Err(); err != nil {
		return nil, models.StoreError("error iterating disputes", err)
	}

	return disputes, nil
}
