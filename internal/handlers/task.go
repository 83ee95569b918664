package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techforing/project-tracking-api/internal/dto"
	apierrors "github.com/techforing/project-tracking-api/internal/errors"
	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks under a project. An empty set reports
// not-found.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByProject(projectID)
	if err != nil {
		respondTaskError(c, err, projectID)
		return
	}

	if len(tasks) == 0 {
		apierrors.NotFound(c, "No tasks found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToTaskDTOs(tasks),
		"message": fmt.Sprintf("All tasks for project %d fetched successfully.", projectID),
	})
}

// CreateTask creates a task under the project named in the path. Any
// project value in the body is ignored.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	task := models.Task{
		Title:      req.Title,
		TaskDesc:   req.TaskDesc,
		Status:     models.TaskStatusTodo,
		Priority:   models.TaskPriorityMedium,
		AssigneeID: req.AssignedTo,
		ProjectID:  projectID,
		DueDate:    req.DueDate,
	}
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = models.TaskPriority(req.Priority)
	}

	if err := h.taskService.Create(&task); err != nil {
		respondTaskError(c, err, projectID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    dto.ToTaskDTO(task),
		"message": fmt.Sprintf("Task created successfully for project %d.", projectID),
	})
}

// GetTask returns a task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err, 0)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToTaskDTO(*task),
		"message": fmt.Sprintf("Task of id %d fetched successfully.", task.ID),
	})
}

// UpdateTask applies a partial update to a task. The parent project cannot
// be changed through this endpoint.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err, 0)
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields := apierrors.FieldErrors{}

	if v, ok := rawReq["title"].(string); ok {
		task.Title = v
	}
	if v, ok := rawReq["task_desc"].(string); ok {
		task.TaskDesc = v
	}
	if raw, ok := rawReq["status"]; ok {
		if v, ok := raw.(string); ok && models.TaskStatus(v).IsValid() {
			task.Status = models.TaskStatus(v)
		} else {
			fields.Add("status", "Value must be one of: to_do, in_progress, done.")
		}
	}
	if raw, ok := rawReq["priority"]; ok {
		if v, ok := raw.(string); ok && models.TaskPriority(v).IsValid() {
			task.Priority = models.TaskPriority(v)
		} else {
			fields.Add("priority", "Value must be one of: low, medium, high.")
		}
	}
	if raw, ok := rawReq["assigned_to"]; ok {
		switch v := raw.(type) {
		case nil:
			task.AssigneeID = nil
		case float64:
			if v < 0 {
				fields.Add("assigned_to", "Assignee must be a positive integer.")
				break
			}
			assignee := uint64(v)
			task.AssigneeID = &assignee
		default:
			fields.Add("assigned_to", "This value is invalid.")
		}
	}
	if raw, ok := rawReq["due_date"]; ok {
		if v, ok := raw.(string); ok {
			if parsed, err := time.Parse(time.RFC3339, v); err == nil {
				task.DueDate = parsed
			} else {
				fields.Add("due_date", "Datetime has wrong format.")
			}
		} else {
			fields.Add("due_date", "Datetime has wrong format.")
		}
	}

	if len(fields) > 0 {
		fields.Respond(c)
		return
	}

	if err := h.taskService.Update(task); err != nil {
		respondTaskError(c, err, 0)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToTaskDTO(*task),
		"message": fmt.Sprintf("Task of id %d updated successfully.", task.ID),
	})
}

// DeleteTask removes a task with its comments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err, 0)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error, projectID uint64) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, fmt.Sprintf("Project %d not found.", projectID))
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found.")
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.FieldErrors{"assigned_to": {"Assigned user does not exist."}}.Respond(c)
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
