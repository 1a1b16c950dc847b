package tests

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/config"
)

// IntegrationSuiteBase runs against in-memory SQLite unless TEST_DB_DRIVER and
// TEST_DB_DSN point at a MySQL or PostgreSQL instance.
type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB
}

func (s *IntegrationSuiteBase) SetupSuite() {
	driver := envOrDefault("TEST_DB_DRIVER", config.DriverSQLite)
	cfg := &config.Config{
		DbDriver:       driver,
		DbDSN:          os.Getenv("TEST_DB_DSN"),
		SQLitePath:     ":memory:",
		DbMaxOpenConns: 5,
		DbMaxIdleConns: 5,
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to %s: %v", driver, err)
	}
	s.DB = db

	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	_, err := s.DB.Exec("DELETE FROM tasks")
	s.Require().NoError(err)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
