package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techforing/project-tracking-api/internal/dto"
	apierrors "github.com/techforing/project-tracking-api/internal/errors"
	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/services"
)

// CommentHandler coordinates comment HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments returns all comments under a task. The task must exist; an
// empty set reports not-found.
func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByTask(taskID)
	if err != nil {
		respondCommentError(c, err, taskID)
		return
	}

	if len(comments) == 0 {
		apierrors.NotFound(c, "No comments found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToCommentDTOs(comments),
		"message": fmt.Sprintf("All comments for task %d fetched successfully.", taskID),
	})
}

// CreateComment creates a comment under the task named in the path. Any
// task value in the body is ignored.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	comment := models.Comment{
		Content: req.Content,
		UserID:  req.User,
		TaskID:  taskID,
	}

	if err := h.commentService.Create(&comment); err != nil {
		respondCommentError(c, err, taskID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    dto.ToCommentDTO(comment),
		"message": fmt.Sprintf("Comment created successfully for task %d.", taskID),
	})
}

// UpdateComment applies a partial update to a comment. The parent task
// cannot be changed through this endpoint.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(id)
	if err != nil {
		respondCommentError(c, err, 0)
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if v, ok := rawReq["content"].(string); ok {
		comment.Content = v
	}
	if v, ok := rawReq["user"].(float64); ok {
		if v < 0 {
			apierrors.FieldErrors{"user": {"User must be a positive integer."}}.Respond(c)
			return
		}
		comment.UserID = uint64(v)
	}

	if err := h.commentService.Update(comment); err != nil {
		respondCommentError(c, err, 0)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToCommentDTO(*comment),
		"message": fmt.Sprintf("Comment of id %d updated successfully.", comment.ID),
	})
}

// DeleteComment removes a comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		respondCommentError(c, err, 0)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCommentError(c *gin.Context, err error, taskID uint64) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, fmt.Sprintf("Task %d not found.", taskID))
	case errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, "Comment not found.")
	case errors.Is(err, services.ErrAuthorNotFound):
		apierrors.FieldErrors{"user": {"Comment author does not exist."}}.Respond(c)
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
