package domain

import (
	"math"
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TaskFilter holds the optional list predicates. Nil pointers and a blank
// title mean the predicate is not applied.
type TaskFilter struct {
	IsCompleted *bool
	Title       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f TaskFilter) HasTitle() bool {
	return strings.TrimSpace(f.Title) != ""
}

// Matches reports whether task satisfies every predicate set on the filter.
func (f TaskFilter) Matches(task Task) bool {
	if f.IsCompleted != nil && task.IsCompleted != *f.IsCompleted {
		return false
	}
	if f.HasTitle() && !strings.Contains(task.Title, f.Title) {
		return false
	}
	if f.CreatedFrom != nil && task.CreatedDate.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && task.CreatedDate.After(*f.CreatedTo) {
		return false
	}
	return true
}

type Page struct {
	Number int
	Size   int
}

// PageLimits bounds the page size accepted from clients.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

func DefaultPageLimits() PageLimits {
	return PageLimits{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}
}

// NewPage clamps out-of-range values instead of rejecting them: a page number
// below 1 becomes 1, a non-positive size becomes the default and sizes above
// the maximum are capped.
func NewPage(number, size int, limits PageLimits) Page {
	if limits.DefaultSize <= 0 {
		limits.DefaultSize = DefaultPageSize
	}
	if limits.MaxSize <= 0 {
		limits.MaxSize = MaxPageSize
	}
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = limits.DefaultSize
	}
	if size > limits.MaxSize {
		size = limits.MaxSize
	}
	return Page{Number: number, Size: size}
}

// Offset saturates at math.MaxInt so a page far past the end stays empty
// instead of wrapping negative.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
