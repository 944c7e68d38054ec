package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var log = slog.Default().With("system", "database")

// Migration is one versioned SQL file. The version is the file name without
// its extension; versions apply in lexical order.
type Migration struct {
	Version string
	SQL     string
}

// MigrationState reports whether a known migration has been applied
type MigrationState struct {
	Version string `json:"version"`
	Applied bool   `json:"applied"`
}

// RunMigrations applies every pending embedded migration
func RunMigrations(db *sql.DB) error {
	_, err := Migrate(context.Background(), db, migrationsFS)
	return err
}

// Migrate applies the pending migrations found in fsys and returns the
// versions it applied. Each migration commits together with its bookkeeping row.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS) ([]string, error) {
	known, applied, err := migrationState(ctx, db, fsys)
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, m := range known {
		if applied[m.Version] {
			continue
		}

		log.Info("applying migration", "version", m.Version)
		if err := apply(ctx, db, m); err != nil {
			return ran, fmt.Errorf("failed to apply migration %s: %w", m.Version, err)
		}
		ran = append(ran, m.Version)
	}
	return ran, nil
}

// Status lists every embedded migration and whether it has been applied
func Status(ctx context.Context, db *sql.DB) ([]MigrationState, error) {
	known, applied, err := migrationState(ctx, db, migrationsFS)
	if err != nil {
		return nil, err
	}

	states := make([]MigrationState, 0, len(known))
	for _, m := range known {
		states = append(states, MigrationState{Version: m.Version, Applied: applied[m.Version]})
	}
	return states, nil
}

func migrationState(ctx context.Context, db *sql.DB, fsys fs.FS) ([]Migration, map[string]bool, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS migrations (
		version TEXT PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	known, err := loadMigrations(fsys, "migrations")
	if err != nil {
		return nil, nil, err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return known, applied, nil
}

// loadMigrations reads the *.sql files of dir within fsys, sorted by version
func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migration files found in %s", dir)
	}

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(path.Base(file), ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (version) VALUES (?)", m.Version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}
