package db

import (
	"strings"

	"tasktracker/internal/core/domain"
)

// buildTaskWhere turns the filter into an AND-ed WHERE clause with `?`
// placeholders. It returns an empty clause when no predicate is set.
func buildTaskWhere(dialect Dialect, filter domain.TaskFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.IsCompleted != nil {
		conditions = append(conditions, "is_completed = ?")
		args = append(args, *filter.IsCompleted)
	}

	if filter.HasTitle() {
		conditions = append(conditions, dialect.containsExpr("title"))
		args = append(args, filter.Title)
	}

	if filter.CreatedFrom != nil {
		conditions = append(conditions, "created_date >= ?")
		args = append(args, filter.CreatedFrom.UTC())
	}

	if filter.CreatedTo != nil {
		conditions = append(conditions, "created_date <= ?")
		args = append(args, filter.CreatedTo.UTC())
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
