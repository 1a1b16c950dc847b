package mapper

import (
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

// TimestampLayout renders timestamps with their sub-second part.
const TimestampLayout = time.RFC3339Nano

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		CreatedDate: task.CreatedDate.UTC().Format(TimestampLayout),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedDate != nil {
		value := task.CompletedDate.UTC().Format(TimestampLayout)
		item.CompletedDate = &value
	}

	return item
}

func ToCreateTaskInput(req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}
}

func ToUpdateTaskInput(req dto.UpdateTaskRequest) domain.UpdateTaskInput {
	return domain.UpdateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
}
