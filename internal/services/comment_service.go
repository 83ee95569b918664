package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrAuthorNotFound  = errors.New("comment author does not exist")
)

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// ListByTask retrieves all comments under a task. The task itself must
// exist.
func (s *CommentService) ListByTask(taskID uint64) ([]models.Comment, error) {
	exists, err := s.taskRepo.Exists(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Create checks that the parent task exists and that the author is a real
// user, then persists the comment. The task ID must come from the caller's
// URL path, never from the request body.
func (s *CommentService) Create(comment *models.Comment) error {
	exists, err := s.taskRepo.Exists(comment.TaskID)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return ErrTaskNotFound
	}

	if err := s.checkAuthor(comment.UserID); err != nil {
		return err
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// Get retrieves a comment by ID.
func (s *CommentService) Get(id uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// Update persists an already-mutated comment after re-validating the author.
func (s *CommentService) Update(comment *models.Comment) error {
	if err := s.checkAuthor(comment.UserID); err != nil {
		return err
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

// Delete removes a comment.
func (s *CommentService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) checkAuthor(userID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAuthorNotFound
		}
		return fmt.Errorf("failed to check author: %w", err)
	}
	return nil
}
