package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tasktracker/internal/config"
)

const sqliteMemory = ":memory:"

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dialect, err := DialectFor(conf.DbDriver)
	if err != nil {
		return nil, err
	}

	dsn, err := buildDSN(conf, dialect)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, err
	}

	if dialect.Name == config.DriverSQLite {
		// One writer, and an in-memory database only lives as long as its
		// single connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func buildDSN(conf *config.Config, dialect Dialect) (string, error) {
	if conf.DbDSN != "" {
		return conf.DbDSN, nil
	}

	switch dialect.Name {
	case config.DriverMySQL:
		params := conf.DbParams
		if params == "" {
			params = "parseTime=true&loc=UTC"
		}
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case config.DriverPostgres:
		return conf.PostgresURL, nil
	case config.DriverSQLite:
		path := conf.SQLitePath
		if path == "" {
			path = sqliteMemory
		}
		if path != sqliteMemory {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return "", fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return path, nil
	}

	return "", fmt.Errorf("unsupported database driver %q", dialect.Name)
}
