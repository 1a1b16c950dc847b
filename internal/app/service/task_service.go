package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

type Option func(*TaskService)

// WithClock replaces the time source used for createdDate/completedDate.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter, page domain.Page) (domain.TaskList, error) {
	tasks, err := s.taskRepository.List(ctx, filter, page)
	if err != nil {
		return domain.TaskList{}, err
	}

	total, err := s.taskRepository.Count(ctx, filter)
	if err != nil {
		return domain.TaskList{}, err
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	return domain.TaskList{Items: tasks, TotalCount: total, Page: page}, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.getExisting(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		IsCompleted: false,
		CreatedDate: s.clock(),
	}

	id, err := s.taskRepository.Create(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = id

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.getExisting(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	if input.IsCompleted {
		task.MarkCompleted(s.clock())
	} else {
		task.MarkIncomplete()
	}

	if err := s.save(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.getExisting(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.IsCompleted {
		return domain.Task{}, domain.AlreadyCompleted(id)
	}

	task.MarkCompleted(s.clock())
	if err := s.save(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	exists, err := s.taskRepository.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound(id)
	}

	if err := s.taskRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.NotFound(id)
		}
		return err
	}
	return nil
}

func (s *TaskService) getExisting(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.Task{}, domain.NotFound(id)
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) save(ctx context.Context, task domain.Task) error {
	return s.taskRepository.Update(ctx, task)
}

// clock returns now in UTC at the precision every supported store keeps.
func (s *TaskService) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
