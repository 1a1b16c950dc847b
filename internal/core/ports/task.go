package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter, page domain.Page) ([]domain.Task, error)
	Count(ctx context.Context, filter domain.TaskFilter) (int, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (int64, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter, page domain.Page) (domain.TaskList, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	CompleteTask(ctx context.Context, id int64) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
