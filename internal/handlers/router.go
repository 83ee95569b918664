package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/techforing/project-tracking-api/internal/middleware"
	"github.com/techforing/project-tracking-api/internal/token"
)

// RegisterRoutes mounts every resource handler. Only the profile endpoints
// and the project collection require an access token.
func RegisterRoutes(
	r *gin.Engine,
	tokens *token.Manager,
	userHandler *UserHandler,
	projectHandler *ProjectHandler,
	taskHandler *TaskHandler,
	commentHandler *CommentHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Tracking API is running",
		})
	})

	auth := middleware.RequireAuth(tokens)

	users := r.Group("/users")
	{
		users.POST("/register/", userHandler.Register)
		users.POST("/login/", userHandler.Login)
		users.POST("/token/refresh/", userHandler.RefreshToken)
		users.GET("/:id/", auth, userHandler.GetProfile)
		users.PATCH("/:id/", auth, userHandler.UpdateProfile)
		users.DELETE("/:id/", auth, userHandler.DeleteProfile)
	}

	projects := r.Group("/projects")
	{
		projects.GET("/", auth, projectHandler.ListProjects)
		projects.POST("/", auth, projectHandler.CreateProject)
		projects.GET("/:id/", projectHandler.GetProject)
		projects.GET("/:id/members/", projectHandler.ListProjectMembers)
		projects.PATCH("/:id/", projectHandler.UpdateProject)
		projects.DELETE("/:id/", projectHandler.DeleteProject)
	}

	r.GET("/projects/:id/tasks/", taskHandler.ListTasks)
	r.POST("/projects/:id/tasks/", taskHandler.CreateTask)

	tasks := r.Group("/tasks")
	{
		tasks.GET("/:task_id/", taskHandler.GetTask)
		tasks.PATCH("/:task_id/", taskHandler.UpdateTask)
		tasks.DELETE("/:task_id/", taskHandler.DeleteTask)
		tasks.GET("/:task_id/comments/", commentHandler.ListComments)
		tasks.POST("/:task_id/comments/", commentHandler.CreateComment)
	}

	comments := r.Group("/comments")
	{
		comments.PATCH("/:comment_id/", commentHandler.UpdateComment)
		comments.DELETE("/:comment_id/", commentHandler.DeleteComment)
	}
}
