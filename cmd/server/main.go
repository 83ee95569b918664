package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/techforing/project-tracking-api/internal/config"
	"github.com/techforing/project-tracking-api/internal/database"
	"github.com/techforing/project-tracking-api/internal/handlers"
	"github.com/techforing/project-tracking-api/internal/logging"
	"github.com/techforing/project-tracking-api/internal/middleware"
	"github.com/techforing/project-tracking-api/internal/repository"
	"github.com/techforing/project-tracking-api/internal/services"
	"github.com/techforing/project-tracking-api/internal/token"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg)
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatalw("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatalw("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Fatalw("Failed to create indexes", zap.Error(err))
	}

	tokens := token.NewManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTTLHours)*time.Hour,
	)

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)

	userHandler := handlers.NewUserHandler(authService, userService, tokens)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	handlers.RegisterRoutes(r, tokens, userHandler, projectHandler, taskHandler, commentHandler)

	logger.Infow("Server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatalw("Failed to start server", zap.Error(err))
	}
}
