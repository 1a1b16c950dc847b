package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/apiresponse"
)

// TaskHandler attaches failures with c.Error; middleware.ErrorHandler renders them.
type TaskHandler struct {
	taskService ports.TaskService
	pageLimits  domain.PageLimits
}

func NewTaskHandler(taskService ports.TaskService, pageLimits domain.PageLimits) *TaskHandler {
	return &TaskHandler{taskService: taskService, pageLimits: pageLimits}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(domain.MalformedArgument("query string could not be read", err))
		return
	}

	filter, page, fields := validation.ParseListQuery(query, h.pageLimits)
	if len(fields) > 0 {
		_ = c.Error(domain.Validation(fields...))
		return
	}

	list, err := h.taskService.ListTasks(c.Request.Context(), filter, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Paged(
		http.StatusOK,
		apierrors.GetTransMsg(apierrors.MsgTasksRetrieved, middleware.GetLang(c), nil),
		mapper.ToTaskItems(list.Items),
		apiresponse.PageMeta{
			PageNumber: list.Page.Number,
			PageSize:   list.Page.Size,
			TotalCount: list.TotalCount,
			TotalPages: list.TotalPages(),
		},
	))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, apierrors.MsgTaskRetrieved, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.MalformedArgument("request body is not valid JSON", err))
		return
	}

	if fields := validation.ValidateCreateTask(req); len(fields) > 0 {
		_ = c.Error(domain.Validation(fields...))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), mapper.ToCreateTaskInput(req))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusCreated, apierrors.MsgTaskCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.MalformedArgument("request body is not valid JSON", err))
		return
	}

	if fields := validation.ValidateUpdateTask(req); len(fields) > 0 {
		_ = c.Error(domain.Validation(fields...))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, mapper.ToUpdateTaskInput(req))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, apierrors.MsgTaskUpdated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	id, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, apierrors.MsgTaskCompleted, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, apierrors.MsgTaskDeleted, true)
}

func (h *TaskHandler) respond(c *gin.Context, status int, msgKey string, data any) {
	message := apierrors.GetTransMsg(msgKey, middleware.GetLang(c), nil)
	c.JSON(status, apiresponse.Success(status, message, data))
}
