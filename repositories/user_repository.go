package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/badapples/registry/models"
)

// UserRepository interface defines user database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListStaffEmails(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, password_hash, role, is_active, created_at`

// Create inserts a new user
func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		u.CreatedAt,
	)
	if err != nil {
		return models.StoreError("failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.StoreError("failed to get inserted ID", err)
	}

	u.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "user", ID: id}
	}
	return user, err
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when absent.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// GetByEmail retrieves a user by email, case-insensitively. Returns (nil, nil) when absent.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// ListStaffEmails returns the addresses of active admins and moderators
func (r *userRepository) ListStaffEmails(ctx context.Context) ([]string, error) {
	query := `
		SELECT email FROM users
		WHERE role IN (?, ?) AND is_active = 1 AND email != ''
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.RoleAdmin, models.RoleModerator)
	if err != nil {
		return nil, models.StoreError("failed to query staff emails", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, models.StoreError("failed to scan staff email", err)
		}
		emails = append(emails, email)
	}

	if err = rows.Err(); err != nil {
		return nil, models.StoreError("error iterating staff emails", err)
	}

	return emails, nil
}

// Count returns the number of user accounts
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, models.StoreError("failed to count users", err)
	}
	return count, nil
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, models.StoreError(fmt.Sprintf("failed to get user %v", arg), err)
	}
	return &u, nil
}
