package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const (
	taskColumns = "id, title, description, is_completed, created_date, completed_date"

	listTasksQuery  = "SELECT " + taskColumns + " FROM tasks%s ORDER BY created_date DESC, id DESC LIMIT ? OFFSET ?"
	countTasksQuery = "SELECT COUNT(*) FROM tasks%s"
	getTaskQuery    = "SELECT " + taskColumns + " FROM tasks WHERE id = ?"
	taskExistsQuery = "SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)"
	insertTaskQuery = `
INSERT INTO tasks (title, description, is_completed, created_date, completed_date)
VALUES (:title, :description, :is_completed, :created_date, :completed_date)`
	updateTaskQuery = `
UPDATE tasks
SET title = :title, description = :description, is_completed = :is_completed, completed_date = :completed_date
WHERE id = :id`
	deleteTaskQuery = "DELETE FROM tasks WHERE id = ?"
)

type TaskRepository struct {
	db      *sqlx.DB
	dialect Dialect
}

type taskRow struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	IsCompleted   bool           `db:"is_completed"`
	CreatedDate   time.Time      `db:"created_date"`
	CompletedDate sql.NullTime   `db:"completed_date"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) (*TaskRepository, error) {
	dialect, err := dialectForDriverName(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &TaskRepository{db: db, dialect: dialect}, nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter, page domain.Page) ([]domain.Task, error) {
	where, args := buildTaskWhere(r.dialect, filter)
	query := r.db.Rebind(fmt.Sprintf(listTasksQuery, where))
	args = append(args, page.Limit(), page.Offset())

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter domain.TaskFilter) (int, error) {
	where, args := buildTaskWhere(r.dialect, filter)
	query := r.db.Rebind(fmt.Sprintf(countTasksQuery, where))

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getTaskQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (int64, error) {
	query, args, err := r.db.BindNamed(insertTaskQuery, mapDomainTaskToTaskRow(task))
	if err != nil {
		return 0, fmt.Errorf("bind insert task: %w", err)
	}

	if r.dialect.returningID {
		var id int64
		if err := r.db.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert task: %w", err)
		}
		return id, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	if _, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToTaskRow(task)); err != nil {
		return fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(deleteTaskQuery), id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, r.db.Rebind(taskExistsQuery), id); err != nil {
		return false, fmt.Errorf("check task %d: %w", id, err)
	}
	return exists, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		IsCompleted: row.IsCompleted,
		CreatedDate: row.CreatedDate.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CompletedDate.Valid {
		value := row.CompletedDate.Time.UTC()
		task.CompletedDate = &value
	}

	return task
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:          task.ID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		CreatedDate: task.CreatedDate.UTC(),
	}

	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}

	if task.CompletedDate != nil {
		row.CompletedDate = sql.NullTime{Time: task.CompletedDate.UTC(), Valid: true}
	}

	return row
}
