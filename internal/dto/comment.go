package dto

import (
	"time"

	"github.com/techforing/project-tracking-api/internal/models"
)

// CreateCommentRequest is the payload for comment creation. The task is
// taken from the URL path, never from the body.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	User    uint64 `json:"user" binding:"required"`
}

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	User      uint64    `json:"user"`
	Task      uint64    `json:"task"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		User:      comment.UserID,
		Task:      comment.TaskID,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}
