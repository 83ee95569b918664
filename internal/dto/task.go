package dto

import (
	"time"

	"github.com/techforing/project-tracking-api/internal/models"
)

// CreateTaskRequest is the payload for task creation. The project is taken
// from the URL path, never from the body.
type CreateTaskRequest struct {
	Title      string    `json:"title" binding:"required,max=50"`
	TaskDesc   string    `json:"task_desc" binding:"required"`
	Status     string    `json:"status" binding:"omitempty,oneof=to_do in_progress done"`
	Priority   string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo *uint64   `json:"assigned_to"`
	DueDate    time.Time `json:"due_date" binding:"required"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID         uint64              `json:"id"`
	Title      string              `json:"title"`
	TaskDesc   string              `json:"task_desc"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	AssignedTo *uint64             `json:"assigned_to"`
	Project    uint64              `json:"project"`
	CreatedAt  time.Time           `json:"created_at"`
	DueDate    time.Time           `json:"due_date"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:         task.ID,
		Title:      task.Title,
		TaskDesc:   task.TaskDesc,
		Status:     task.Status,
		Priority:   task.Priority,
		AssignedTo: task.AssigneeID,
		Project:    task.ProjectID,
		CreatedAt:  task.CreatedAt,
		DueDate:    task.DueDate,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
