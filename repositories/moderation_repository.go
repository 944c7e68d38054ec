package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/badapples/registry/models"
)

// ModerationRepository persists the content moderation ledger
type ModerationRepository interface {
	Create(ctx context.Context, moderation *models.ContentModeration) error
	ListByRecord(ctx context.Context, ref models.RecordRef) ([]models.ContentModeration, error)
}

// moderationRepository implements ModerationRepository interface
type moderationRepository struct {
	db DBTX
}

// NewModerationRepository creates a new moderation repository
func NewModerationRepository(db DBTX) ModerationRepository {
	return &moderationRepository{db: db}
}

// Create inserts a ledger row
func (r *moderationRepository) Create(ctx context.Context, m *models.ContentModeration) error {
	query := `
		INSERT INTO content_moderation (table_name, record_id, status, moderator_id, reason_code,
		                                notes, disputed_by, dispute_reason, dispute_date,
		                                resolution_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	result, err := r.db.ExecContext(ctx, query,
		m.TableName,
		m.RecordID,
		m.Status,
		m.ModeratorID,
		m.ReasonCode,
		m.Notes,
		m.DisputedBy,
		m.DisputeReason,
		m.DisputeDate,
		m.ResolutionDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create moderation record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	m.ID = id
	return nil
}

// ListByRecord returns the ledger history of a record, oldest first
func (r *moderationRepository) ListByRecord(ctx context.Context, ref models.RecordRef) ([]models.ContentModeration, error) {
	query := `
		SELECT id, table_name, record_id, status, moderator_id, reason_code, notes, disputed_by,
		       dispute_reason, dispute_date, resolution_date, created_at, updated_at
		FROM content_moderation
		WHERE table_name = ? AND record_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ref.Table, ref.ID)
	if err != nil {
		return nil, models.StoreError("failed to query moderation records", err)
	}
	defer rows.Close()

	var records []models.ContentModeration
	for rows.Next() {
		var m models.ContentModeration
		var moderatorID sql.NullInt64
		var disputeDate, resolutionDate sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.TableName,
			&m.RecordID,
			&m.Status,
			&moderatorID,
			&m.ReasonCode,
			&m.Notes,
			&m.DisputedBy,
			&m.DisputeReason,
			&disputeDate,
			&resolutionDate,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, models.StoreError("failed to scan moderation record", err)
		}

		m.ModeratorID = int64Ptr(moderatorID)
		m.DisputeDate = timePtr(disputeDate)
		m.ResolutionDate = timePtr(resolutionDate)

		records = append(records, m)
	}

	if err = rows.Err(); err != nil {
		return nil, models.StoreError("error iterating moderation records", err)
	}

	return records, nil
}
