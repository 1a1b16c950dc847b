package db

import (
	"fmt"

	"tasktracker/internal/config"
)

// Dialect captures the few places where the supported engines disagree.
type Dialect struct {
	Name       string
	DriverName string
	// substringFunc is a case-sensitive position function taking
	// (haystack, needle) and returning 0 when needle is absent.
	substringFunc string
	returningID   bool
}

var dialects = map[string]Dialect{
	config.DriverMySQL: {
		Name:          config.DriverMySQL,
		DriverName:    "mysql",
		substringFunc: "INSTR",
	},
	config.DriverPostgres: {
		Name:          config.DriverPostgres,
		DriverName:    "pgx",
		substringFunc: "strpos",
		returningID:   true,
	},
	config.DriverSQLite: {
		Name:          config.DriverSQLite,
		DriverName:    "sqlite",
		substringFunc: "instr",
	},
}

func DialectFor(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
	return d, nil
}

// dialectForDriverName resolves the dialect from the database/sql driver name
// reported by sqlx.
func dialectForDriverName(driverName string) (Dialect, error) {
	for _, d := range dialects {
		if d.DriverName == driverName {
			return d, nil
		}
	}
	return Dialect{}, fmt.Errorf("unsupported sql driver %q", driverName)
}

func (d Dialect) containsExpr(column string) string {
	return fmt.Sprintf("%s(%s, ?) > 0", d.substringFunc, column)
}
