package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrOwnerNotFound   = errors.New("owner user does not exist")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// List retrieves every project.
func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create validates the owner reference and persists the project.
func (s *ProjectService) Create(project *models.Project) error {
	if _, err := s.userRepo.FindByID(project.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to check owner: %w", err)
	}

	if err := s.projectRepo.Create(project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	// The owner is always enrolled as an admin member.
	owner := &models.ProjectMember{
		ProjectID: project.ID,
		UserID:    project.OwnerID,
		Role:      models.RoleAdmin,
	}
	if err := s.projectRepo.AddMember(owner); err != nil {
		return fmt.Errorf("failed to enroll owner: %w", err)
	}
	return nil
}

// Members lists the members of a project. The project must exist.
func (s *ProjectService) Members(projectID uint64) ([]models.ProjectMember, error) {
	if _, err := s.Get(projectID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Update persists an already-mutated project, re-checking the owner if it
// was changed to a different user.
func (s *ProjectService) Update(project *models.Project) error {
	if _, err := s.userRepo.FindByID(project.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to check owner: %w", err)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project with its members, tasks, and task comments.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
