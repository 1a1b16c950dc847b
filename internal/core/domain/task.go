package domain

import "time"

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 1000
)

type Task struct {
	ID            int64
	Title         string
	Description   *string
	IsCompleted   bool
	CreatedDate   time.Time
	CompletedDate *time.Time
}

// MarkCompleted flips the task into the completed state, stamping completedDate
// only on the incomplete -> complete transition.
func (t *Task) MarkCompleted(now time.Time) {
	if t.IsCompleted && t.CompletedDate != nil {
		return
	}
	t.IsCompleted = true
	t.CompletedDate = &now
}

func (t *Task) MarkIncomplete() {
	t.IsCompleted = false
	t.CompletedDate = nil
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	IsCompleted bool
}

type TaskList struct {
	Items      []Task
	TotalCount int
	Page       Page
}

func (l TaskList) TotalPages() int {
	if l.Page.Size <= 0 || l.TotalCount == 0 {
		return 0
	}
	return (l.TotalCount + l.Page.Size - 1) / l.Page.Size
}
