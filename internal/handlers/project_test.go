package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/techforing/project-tracking-api/internal/dto"
	"github.com/techforing/project-tracking-api/internal/models"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	env         *testEnv
	owner       *models.User
	accessToken string
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.owner = suite.env.createUser(suite.T(), "owner", "owner@example.com")
	suite.accessToken = suite.env.accessToken(suite.T(), suite.owner.ID)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_RequiresAuth() {
	w := suite.env.request(suite.T(), http.MethodGet, "/projects/", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet, "/projects/", nil, "garbage-token")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_EmptyIsNotFound() {
	w := suite.env.request(suite.T(), http.MethodGet, "/projects/", nil, suite.accessToken)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "No projects found.")
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	w := suite.env.request(suite.T(), http.MethodPost, "/projects/", map[string]any{
		"project_name": "Apollo",
		"description":  "Launch tracker",
		"owner":        suite.owner.ID,
	}, suite.accessToken)

	suite.Equal(http.StatusCreated, w.Code)

	resp := decodeEnvelope(suite.T(), w)
	suite.Equal("Project created successfully.", resp.Message)

	var project dto.ProjectDTO
	suite.Require().NoError(json.Unmarshal(resp.Data, &project))
	suite.Equal("Apollo", project.ProjectName)
	suite.Equal(suite.owner.ID, project.Owner)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_EnrollsOwnerAsAdmin() {
	w := suite.env.request(suite.T(), http.MethodPost, "/projects/", map[string]any{
		"project_name": "Apollo",
		"description":  "Launch tracker",
		"owner":        suite.owner.ID,
	}, suite.accessToken)
	suite.Equal(http.StatusCreated, w.Code)

	var member models.ProjectMember
	suite.Require().NoError(suite.env.db.First(&member).Error)
	suite.Equal(suite.owner.ID, member.UserID)
	suite.Equal(models.RoleAdmin, member.Role)
}

func (suite *ProjectHandlerTestSuite) TestListProjectMembers() {
	w := suite.env.request(suite.T(), http.MethodPost, "/projects/", map[string]any{
		"project_name": "Apollo",
		"description":  "Launch tracker",
		"owner":        suite.owner.ID,
	}, suite.accessToken)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.env.request(suite.T(), http.MethodGet, "/projects/1/members/", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var members []dto.ProjectMemberDTO
	resp := decodeEnvelope(suite.T(), w)
	suite.Require().NoError(json.Unmarshal(resp.Data, &members))
	suite.Require().Len(members, 1)
	suite.Equal(suite.owner.ID, members[0].User)
	suite.Equal(models.RoleAdmin, members[0].Role)

	w = suite.env.request(suite.T(), http.MethodGet, "/projects/9999/members/", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjectMembers_EmptyIsNotFound() {
	suite.env.createProject(suite.T(), "Bare", suite.owner.ID)

	w := suite.env.request(suite.T(), http.MethodGet, "/projects/1/members/", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "No members found.")
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_UnknownOwner() {
	w := suite.env.request(suite.T(), http.MethodPost, "/projects/", map[string]any{
		"project_name": "Orphan",
		"description":  "No such owner",
		"owner":        9999,
	}, suite.accessToken)

	suite.Equal(http.StatusBadRequest, w.Code)

	var fields map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fields))
	suite.NotEmpty(fields["owner"])
}

func (suite *ProjectHandlerTestSuite) TestGetProject() {
	project := suite.env.createProject(suite.T(), "Apollo", suite.owner.ID)

	w := suite.env.request(suite.T(), http.MethodGet, "/projects/1/", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var fetched dto.ProjectDTO
	resp := decodeEnvelope(suite.T(), w)
	suite.Require().NoError(json.Unmarshal(resp.Data, &fetched))
	suite.Equal(project.ProjectName, fetched.ProjectName)

	w = suite.env.request(suite.T(), http.MethodGet, "/projects/9999/", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_Partial() {
	project := suite.env.createProject(suite.T(), "Apollo", suite.owner.ID)

	w := suite.env.request(suite.T(), http.MethodPatch, "/projects/1/", map[string]any{
		"description": "Rewritten",
	}, "")

	suite.Equal(http.StatusOK, w.Code)

	var updated dto.ProjectDTO
	resp := decodeEnvelope(suite.T(), w)
	suite.Require().NoError(json.Unmarshal(resp.Data, &updated))
	suite.Equal("Rewritten", updated.Description)
	suite.Equal(project.ProjectName, updated.ProjectName)
	suite.Equal(project.OwnerID, updated.Owner)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NegativeOwner() {
	suite.env.createProject(suite.T(), "Apollo", suite.owner.ID)

	w := suite.env.request(suite.T(), http.MethodPatch, "/projects/1/", map[string]any{
		"owner": -1,
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)

	var fields map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &fields))
	suite.NotEmpty(fields["owner"])
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Cascades() {
	project := suite.env.createProject(suite.T(), "Apollo", suite.owner.ID)
	member := suite.env.createUser(suite.T(), "member", "member@example.com")
	suite.Require().NoError(suite.env.db.Create(&models.ProjectMember{
		ProjectID: project.ID,
		UserID:    member.ID,
		Role:      models.RoleMember,
	}).Error)
	task := suite.env.createTask(suite.T(), "Task A", project.ID)
	suite.env.createComment(suite.T(), "First!", member.ID, task.ID)

	w := suite.env.request(suite.T(), http.MethodDelete, "/projects/1/", nil, "")
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())

	var taskCount, memberCount, commentCount int64
	suite.env.db.Model(&models.Task{}).Count(&taskCount)
	suite.env.db.Model(&models.ProjectMember{}).Count(&memberCount)
	suite.env.db.Model(&models.Comment{}).Count(&commentCount)
	suite.Zero(taskCount)
	suite.Zero(memberCount)
	suite.Zero(commentCount)

	// Collection reads under the deleted project now report not-found.
	w = suite.env.request(suite.T(), http.MethodGet, "/projects/1/tasks/", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.request(suite.T(), http.MethodDelete, "/projects/1/", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
