package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to_do"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID         uint64       `gorm:"primarykey" json:"id"`
	Title      string       `gorm:"type:varchar(50);not null" json:"title"`
	TaskDesc   string       `gorm:"type:text" json:"task_desc"`
	Status     TaskStatus   `gorm:"type:varchar(20);not null;default:'to_do'" json:"status"`
	Priority   TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	AssigneeID *uint64      `json:"assigned_to"`
	ProjectID  uint64       `gorm:"not null" json:"project"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	DueDate    time.Time    `gorm:"not null" json:"due_date"`

	// Relations
	Assignee *User     `gorm:"foreignKey:AssigneeID" json:"-"`
	Project  Project   `gorm:"foreignKey:ProjectID" json:"-"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"-"`
}
