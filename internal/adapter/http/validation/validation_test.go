package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func TestValidateCreateTask(t *testing.T) {
	long := func(n int) *string {
		s := strings.Repeat("é", n)
		return &s
	}

	cases := []struct {
		name string
		req  dto.CreateTaskRequest
		want []domain.FieldError
	}{
		{"valid", dto.CreateTaskRequest{Title: "Buy milk"}, nil},
		{"blank title", dto.CreateTaskRequest{Title: "   "}, []domain.FieldError{{Field: "title", Rule: domain.RuleRequired}}},
		{"title at limit counts runes", dto.CreateTaskRequest{Title: *long(domain.TitleMaxLength)}, nil},
		{"title too long", dto.CreateTaskRequest{Title: *long(domain.TitleMaxLength + 1)},
			[]domain.FieldError{{Field: "title", Rule: domain.RuleMaxLength, Limit: domain.TitleMaxLength}}},
		{"description at limit", dto.CreateTaskRequest{Title: "x", Description: long(domain.DescriptionMaxLength)}, nil},
		{"both invalid", dto.CreateTaskRequest{Description: long(domain.DescriptionMaxLength + 1)}, []domain.FieldError{
			{Field: "title", Rule: domain.RuleRequired},
			{Field: "description", Rule: domain.RuleMaxLength, Limit: domain.DescriptionMaxLength},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateCreateTask(tc.req))
		})
	}
}

func TestValidateUpdateTask(t *testing.T) {
	assert.Empty(t, ValidateUpdateTask(dto.UpdateTaskRequest{Title: "Done", IsCompleted: true}))
	assert.Equal(t,
		[]domain.FieldError{{Field: "title", Rule: domain.RuleRequired}},
		ValidateUpdateTask(dto.UpdateTaskRequest{IsCompleted: true}),
	)
}

func TestParseListQuery_Defaults(t *testing.T) {
	filter, page, fields := ParseListQuery(dto.TaskListQuery{}, domain.DefaultPageLimits())

	assert.Empty(t, fields)
	assert.Equal(t, domain.TaskFilter{}, filter)
	assert.Equal(t, domain.Page{Number: 1, Size: domain.DefaultPageSize}, page)
}

func TestParseListQuery_AllParameters(t *testing.T) {
	filter, page, fields := ParseListQuery(dto.TaskListQuery{
		IsCompleted: "TRUE",
		Title:       "milk",
		CreatedFrom: "2026-01-01",
		CreatedTo:   "2026-01-31T23:59:59+02:00",
		PageNumber:  "2",
		PageSize:    "500",
	}, domain.PageLimits{DefaultSize: 10, MaxSize: 100})

	require.Empty(t, fields)
	require.NotNil(t, filter.IsCompleted)
	assert.True(t, *filter.IsCompleted)
	assert.Equal(t, "milk", filter.Title)
	require.NotNil(t, filter.CreatedFrom)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.CreatedFrom)
	require.NotNil(t, filter.CreatedTo)
	assert.Equal(t, time.Date(2026, 1, 31, 21, 59, 59, 0, time.UTC), *filter.CreatedTo)
	assert.Equal(t, domain.Page{Number: 2, Size: 100}, page)
}

func TestParseListQuery_ReportsEveryBadValue(t *testing.T) {
	_, page, fields := ParseListQuery(dto.TaskListQuery{
		IsCompleted: "yes",
		CreatedFrom: "yesterday",
		CreatedTo:   "2026-13-01",
		PageNumber:  "one",
		PageSize:    "1.5",
	}, domain.DefaultPageLimits())

	assert.Equal(t, []domain.FieldError{
		{Field: "isCompleted", Rule: domain.RuleBoolean},
		{Field: "createdFrom", Rule: domain.RuleDatetime},
		{Field: "createdTo", Rule: domain.RuleDatetime},
		{Field: "pageNumber", Rule: domain.RuleInteger},
		{Field: "pageSize", Rule: domain.RuleInteger},
	}, fields)
	assert.Equal(t, domain.Page{Number: 1, Size: domain.DefaultPageSize}, page)
}

func TestParseListQuery_ClampsNonPositivePaging(t *testing.T) {
	_, page, fields := ParseListQuery(dto.TaskListQuery{PageNumber: "-3", PageSize: "0"}, domain.DefaultPageLimits())

	assert.Empty(t, fields)
	assert.Equal(t, domain.Page{Number: 1, Size: domain.DefaultPageSize}, page)
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-1", "", "1.5", "99999999999999999999"} {
		_, err := ParseTaskID(raw)
		require.Error(t, err, raw)
		assert.Equal(t, domain.KindMalformedArgument, domain.KindOf(err), raw)
	}
}
