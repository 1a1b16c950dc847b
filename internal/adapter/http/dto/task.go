package dto

// TaskItem is the wire form of a task. Optional values are rendered as null.
type TaskItem struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	IsCompleted   bool    `json:"isCompleted"`
	CreatedDate   string  `json:"createdDate"`
	CompletedDate *string `json:"completedDate"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

// TaskListQuery holds the raw list query parameters before parsing.
type TaskListQuery struct {
	IsCompleted string `form:"isCompleted"`
	Title       string `form:"title"`
	CreatedFrom string `form:"createdFrom"`
	CreatedTo   string `form:"createdTo"`
	PageNumber  string `form:"pageNumber"`
	PageSize    string `form:"pageSize"`
}
