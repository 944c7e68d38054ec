package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/badapples/registry/models"
)

// AuditRepository handles audit log persistence. Entries are append-only,
// so there is no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
	Count(ctx context.Context, filter models.AuditFilter) (int, error)
}

type sqliteAuditRepository struct {
	db DBTX
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db DBTX) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (table_name, record_id, action, field_name, old_value, new_value,
		                        ip_address, user_agent, user_id, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.TableName,
		entry.RecordID,
		entry.Action,
		entry.FieldName,
		entry.OldValue,
		entry.NewValue,
		entry.IPAddress,
		entry.UserAgent,
		entry.UserID,
		entry.Timestamp,
	)
	if err != nil {
		return models.StoreError("failed to create audit log", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	entry.ID = id
	return nil
}

// List retrieves audit entries matching filter, newest first
func (r *sqliteAuditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	where, args := auditWhere(filter)
	page := filter.Page.Normalize()

	query := `
		SELECT id, table_name, record_id, action, field_name, old_value, new_value,
		       ip_address, user_agent, user_id, timestamp
		FROM audit_logs` + where + `
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.StoreError("failed to query audit logs", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		var fieldName, oldValue, newValue sql.NullString
		var userID sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.TableName,
			&entry.RecordID,
			&entry.Action,
			&fieldName,
			&oldValue,
			&newValue,
			&entry.IPAddress,
			&entry.UserAgent,
			&userID,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, models.StoreError("failed to scan audit log", err)
		}

		entry.FieldName = stringPtr(fieldName)
		entry.OldValue = stringPtr(oldValue)
		entry.NewValue = stringPtr(newValue)
		entry.UserID = int64Ptr(userID)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, models.StoreError("error iterating audit logs", err)
	}

	return entries, nil
}

// Count returns the number of audit entries matching filter
func (r *sqliteAuditRepository) Count(ctx context.Context, filter models.AuditFilter) (int, error) {
	where, args := auditWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`+where, args...).Scan(&count)
	if err != nil {
		return 0, models.StoreError("failed to count audit logs", err)
	}

	return count, nil
}

// auditWhere builds the WHERE clause for an audit filter
func auditWhere(filter models.AuditFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Table != "" {
		clauses = append(clauses, "table_name = ?")
		args = append(args, filter.Table)
	}
	if filter.RecordID != nil {
		clauses = append(clauses, "record_id = ?")
		args = append(args, *filter.RecordID)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.UserID != nil {
		clauses = append(clauses, "user_id = ?")
		args = append(args, *filter.UserID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
