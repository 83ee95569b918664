package repository

import (
	"github.com/techforing/project-tracking-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUserName finds a user by username
	FindByUserName(userName string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete removes a user and everything that references it
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// ListAll retrieves every project
	ListAll() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes a project with its members, tasks, and task comments
	Delete(id uint64) error

	// Exists reports whether a project with the given ID exists
	Exists(id uint64) (bool, error)

	// AddMember adds a member to a project
	AddMember(member *models.ProjectMember) error

	// ListMembers lists all members of a project
	ListMembers(projectID uint64) ([]models.ProjectMember, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByProject retrieves all tasks belonging to a project
	ListByProject(projectID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete removes a task together with its comments
	Delete(id uint64) error

	// Exists reports whether a task with the given ID exists
	Exists(id uint64) (bool, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// ListByTask retrieves all comments belonging to a task
	ListByTask(taskID uint64) ([]models.Comment, error)

	// Update updates a comment
	Update(comment *models.Comment) error

	// Delete removes a comment
	Delete(id uint64) error
}
