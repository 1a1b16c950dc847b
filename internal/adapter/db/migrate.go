package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFiles embed.FS

// Migrate applies the embedded schema for the connection's dialect. Every
// script is idempotent, so running it on an initialised database is a no-op.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dialect, err := dialectForDriverName(db.DriverName())
	if err != nil {
		return err
	}

	dir := path.Join("migrations", dialect.Name)
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("read migrations for %s: %w", dialect.Name, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(migrationFiles, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
		zap.L().Debug("applied migration", zap.String("dialect", dialect.Name), zap.String("file", name))
	}

	return nil
}
