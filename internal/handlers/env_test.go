package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techforing/project-tracking-api/internal/database"
	"github.com/techforing/project-tracking-api/internal/models"
	"github.com/techforing/project-tracking-api/internal/repository"
	"github.com/techforing/project-tracking-api/internal/services"
	"github.com/techforing/project-tracking-api/internal/token"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *token.Manager
	authService *services.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Comment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	tokens := token.NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)

	r := gin.New()
	RegisterRoutes(r, tokens,
		NewUserHandler(authService, userService, tokens),
		NewProjectHandler(projectService),
		NewTaskHandler(taskService),
		NewCommentHandler(commentService),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
	}
}

// request performs an HTTP request against the test router. A non-empty
// accessToken is sent as a bearer token.
func (env *testEnv) request(t *testing.T, method, path string, body any, accessToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// envelope is the standard success body.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Tokens  *token.Pair     `json:"tokens"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (env *testEnv) createUser(t *testing.T, userName, email string) *models.User {
	t.Helper()
	user := &models.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createProject(t *testing.T, name string, ownerID uint64) *models.Project {
	t.Helper()
	project := &models.Project{
		ProjectName: name,
		Description: "Test Description",
		OwnerID:     ownerID,
	}
	require.NoError(t, env.db.Create(project).Error)
	return project
}

func (env *testEnv) createTask(t *testing.T, title string, projectID uint64) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:     title,
		TaskDesc:  "Test Description",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		ProjectID: projectID,
		DueDate:   time.Now().Add(48 * time.Hour),
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env *testEnv) createComment(t *testing.T, content string, userID, taskID uint64) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		TaskID:  taskID,
	}
	require.NoError(t, env.db.Create(comment).Error)
	return comment
}

// accessToken issues a valid access token for the user.
func (env *testEnv) accessToken(t *testing.T, userID uint64) string {
	t.Helper()
	pair, err := env.tokens.GeneratePair(userID)
	require.NoError(t, err)
	return pair.Access
}

