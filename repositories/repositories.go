package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/badapples/registry/models"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// standalone or inside a transaction
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Entities   EntityRepository
	Moderation ModerationRepository
	Disputes   DisputeRepository
	Audit      AuditRepository
	Users      UserRepository
	Outbox     OutboxRepository
}

// NewRepositories creates and initializes all repositories over db
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Entities:   NewEntityRepository(db),
		Moderation: NewModerationRepository(db),
		Disputes:   NewDisputeRepository(db),
		Audit:      NewAuditRepository(db),
		Users:      NewUserRepository(db),
		Outbox:     NewOutboxRepository(db),
	}
}

// Transactor runs fn with repositories bound to a single transaction. The
// transaction commits only if fn returns nil.
type Transactor interface {
	WithTx(ctx context.Context, fn func(repos *Repositories) error) error
}

// Store owns the database handle and hands out repositories
type Store struct {
	*Repositories
	db *sql.DB
}

// NewStore creates a store whose embedded repositories run outside any transaction
func NewStore(db *sql.DB) *Store {
	return &Store{
		Repositories: NewRepositories(db),
		db:           db,
	}
}

// WithTx begins a transaction, runs fn, commits once, and rolls back on error or panic
func (s *Store) WithTx(ctx context.Context, fn func(repos *Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.StoreError("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return models.StoreError("failed to commit transaction", err)
	}
	return nil
}

// Ping checks the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return models.StoreError("failed to ping database", err)
	}
	return nil
}

// stringPtr converts a nullable column to *string
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// int64Ptr converts a nullable column to *int64
func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

// timePtr converts a nullable column to *time.Time
func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
