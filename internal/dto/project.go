package dto

import (
	"time"

	"github.com/techforing/project-tracking-api/internal/models"
)

// CreateProjectRequest is the payload for project creation.
type CreateProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required,max=50"`
	Description string `json:"description" binding:"required"`
	Owner       uint64 `json:"owner" binding:"required"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	ProjectName string    `json:"project_name"`
	Description string    `json:"description"`
	Owner       uint64    `json:"owner"`
	DateCreated time.Time `json:"date_created"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		ProjectName: project.ProjectName,
		Description: project.Description,
		Owner:       project.OwnerID,
		DateCreated: project.DateCreated,
	}
}

// ProjectMemberDTO represents a project membership in API responses
type ProjectMemberDTO struct {
	ID      uint64            `json:"id"`
	Project uint64            `json:"project"`
	User    uint64            `json:"user"`
	Role    models.MemberRole `json:"role"`
}

// ToProjectMemberDTOs converts a slice of memberships
func ToProjectMemberDTOs(members []models.ProjectMember) []ProjectMemberDTO {
	dtos := make([]ProjectMemberDTO, len(members))
	for i, member := range members {
		dtos[i] = ProjectMemberDTO{
			ID:      member.ID,
			Project: member.ProjectID,
			User:    member.UserID,
			Role:    member.Role,
		}
	}
	return dtos
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
