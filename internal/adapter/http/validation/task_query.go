package validation

import (
	"strconv"
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

const dateLayout = "2006-01-02"

// ParseListQuery turns raw query values into a filter and a clamped page.
// Every unparseable value is reported; an empty value counts as absent.
func ParseListQuery(q dto.TaskListQuery, limits domain.PageLimits) (domain.TaskFilter, domain.Page, []domain.FieldError) {
	var (
		filter domain.TaskFilter
		fields []domain.FieldError
	)

	if value := strings.TrimSpace(q.IsCompleted); value != "" {
		switch strings.ToLower(value) {
		case "true":
			completed := true
			filter.IsCompleted = &completed
		case "false":
			completed := false
			filter.IsCompleted = &completed
		default:
			fields = append(fields, domain.FieldError{Field: "isCompleted", Rule: domain.RuleBoolean})
		}
	}

	filter.Title = q.Title

	if value := strings.TrimSpace(q.CreatedFrom); value != "" {
		if from, ok := parseDate(value); ok {
			filter.CreatedFrom = &from
		} else {
			fields = append(fields, domain.FieldError{Field: "createdFrom", Rule: domain.RuleDatetime})
		}
	}

	if value := strings.TrimSpace(q.CreatedTo); value != "" {
		if to, ok := parseDate(value); ok {
			filter.CreatedTo = &to
		} else {
			fields = append(fields, domain.FieldError{Field: "createdTo", Rule: domain.RuleDatetime})
		}
	}

	number, ok := parseInt(q.PageNumber)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "pageNumber", Rule: domain.RuleInteger})
	}
	size, ok := parseInt(q.PageSize)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "pageSize", Rule: domain.RuleInteger})
	}

	return filter, domain.NewPage(number, size, limits), fields
}

// ParseTaskID accepts positive decimal ids only.
func ParseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.MalformedArgument("id must be a positive integer", err)
	}
	if id <= 0 {
		return 0, domain.MalformedArgument("id must be a positive integer", nil)
	}
	return id, nil
}

// parseDate accepts RFC3339 timestamps or plain dates (UTC midnight).
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func parseInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
