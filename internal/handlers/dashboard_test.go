package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/taskhive/task-dashboard-api/internal/constants"
	"github.com/taskhive/task-dashboard-api/internal/database"
	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/models"
	"github.com/taskhive/task-dashboard-api/internal/repository"
	"github.com/taskhive/task-dashboard-api/internal/services"
	"github.com/taskhive/task-dashboard-api/internal/view"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *DashboardHandler
}

// SetupTest runs before each test
func (suite *DashboardHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
		&models.WorkspaceMember{},
		&models.Project{},
		&models.Task{},
		&models.Label{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	service := services.NewDashboardService(repository.NewDashboardRepository(suite.db))
	suite.handler = NewDashboardHandler(service)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *DashboardHandlerTestSuite) createTestUser(email, name string) *models.User {
	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *DashboardHandlerTestSuite) createTestWorkspace(name string) *models.Workspace {
	workspace := &models.Workspace{Name: name}
	suite.Require().NoError(suite.db.Create(workspace).Error)
	return workspace
}

func (suite *DashboardHandlerTestSuite) addMember(workspaceID, userID string) {
	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        models.RoleMember,
	}
	suite.Require().NoError(suite.db.Create(member).Error)
}

func (suite *DashboardHandlerTestSuite) createTestProject(name, workspaceID string) *models.Project {
	project := &models.Project{
		Name:        name,
		Slug:        name,
		WorkspaceID: workspaceID,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *DashboardHandlerTestSuite) createTestTask(title, projectID string, status models.TaskStatus, createdAt time.Time) *models.Task {
	task := &models.Task{
		Title:     title,
		Status:    status,
		ProjectID: projectID,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *DashboardHandlerTestSuite) createTestLabel(name, color, taskID string, createdAt time.Time) *models.Label {
	label := &models.Label{
		Name:      name,
		Color:     color,
		TaskID:    taskID,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(label).Error)
	return label
}

func (suite *DashboardHandlerTestSuite) getAllTasks(userID string) (*httptest.ResponseRecorder, []dto.DashboardTask) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard/tasks", nil)
	c.Set(constants.ContextKeyUserID, userID)

	suite.handler.GetAllTasks(c)

	var tasks []dto.DashboardTask
	if w.Code == http.StatusOK {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))
	}
	return w, tasks
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_Unauthorized() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/dashboard/tasks", nil)

	suite.handler.GetAllTasks(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_NoWorkspaces() {
	user := suite.createTestUser("lonely@example.com", "Lonely")

	w, tasks := suite.getAllTasks(user.ID)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), tasks)
	// The response is a bare array, not a pagination envelope
	assert.JSONEq(suite.T(), "[]", w.Body.String())
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_NoProjects() {
	user := suite.createTestUser("empty@example.com", "Empty")
	workspace := suite.createTestWorkspace("Empty Workspace")
	suite.addMember(workspace.ID, user.ID)

	w, tasks := suite.getAllTasks(user.ID)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), tasks)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_AccessControl() {
	user := suite.createTestUser("member@example.com", "Member")
	mine := suite.createTestWorkspace("Mine")
	other := suite.createTestWorkspace("Other")
	suite.addMember(mine.ID, user.ID)

	myProject := suite.createTestProject("my-project", mine.ID)
	otherProject := suite.createTestProject("other-project", other.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	visible := suite.createTestTask("Visible", myProject.ID, models.TaskStatusTodo, base)
	suite.createTestTask("Hidden", otherProject.ID, models.TaskStatusTodo, base.Add(time.Minute))

	w, tasks := suite.getAllTasks(user.ID)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), visible.ID, tasks[0].ID)
	assert.Equal(suite.T(), mine.ID, tasks[0].Project.WorkspaceID)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_OrderedByCreation() {
	user := suite.createTestUser("order@example.com", "Order")
	workspace := suite.createTestWorkspace("Workspace")
	suite.addMember(workspace.ID, user.ID)
	project := suite.createTestProject("project", workspace.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	second := suite.createTestTask("Second", project.ID, models.TaskStatusTodo, base.Add(time.Hour))
	first := suite.createTestTask("First", project.ID, models.TaskStatusTodo, base)

	_, tasks := suite.getAllTasks(user.ID)

	suite.Require().Len(tasks, 2)
	assert.Equal(suite.T(), first.ID, tasks[0].ID)
	assert.Equal(suite.T(), second.ID, tasks[1].ID)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_AssigneeFields() {
	user := suite.createTestUser("owner@example.com", "Owner")
	image := "https://example.com/avatar.png"
	assignee := &models.User{
		Email:        "worker@example.com",
		Name:         "Worker",
		Image:        &image,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(assignee).Error)

	workspace := suite.createTestWorkspace("Workspace")
	suite.addMember(workspace.ID, user.ID)
	project := suite.createTestProject("project", workspace.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := suite.createTestTask("Assigned", project.ID, models.TaskStatusTodo, base)
	suite.Require().NoError(suite.db.Model(task).Update("user_id", assignee.ID).Error)

	_, tasks := suite.getAllTasks(user.ID)

	suite.Require().Len(tasks, 1)
	suite.Require().NotNil(tasks[0].AssigneeID)
	assert.Equal(suite.T(), assignee.ID, *tasks[0].AssigneeID)
	suite.Require().NotNil(tasks[0].AssigneeName)
	assert.Equal(suite.T(), "Worker", *tasks[0].AssigneeName)
	suite.Require().NotNil(tasks[0].AssigneeImage)
	assert.Equal(suite.T(), image, *tasks[0].AssigneeImage)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_StaleAssigneeNotExcluded() {
	user := suite.createTestUser("owner@example.com", "Owner")
	workspace := suite.createTestWorkspace("Workspace")
	suite.addMember(workspace.ID, user.ID)
	project := suite.createTestProject("project", workspace.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := suite.createTestTask("Orphaned assignee", project.ID, models.TaskStatusTodo, base)
	suite.Require().NoError(suite.db.Model(task).Update("user_id", "no-such-user").Error)

	_, tasks := suite.getAllTasks(user.ID)

	// Outer-join semantics: the task is returned with null assignee fields,
	// while the raw user id keeps its stored value.
	suite.Require().Len(tasks, 1)
	assert.Nil(suite.T(), tasks[0].AssigneeID)
	assert.Nil(suite.T(), tasks[0].AssigneeName)
	assert.Nil(suite.T(), tasks[0].AssigneeImage)
	suite.Require().NotNil(tasks[0].UserID)
	assert.Equal(suite.T(), "no-such-user", *tasks[0].UserID)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_LabelGrouping() {
	user := suite.createTestUser("labels@example.com", "Labels")
	workspace := suite.createTestWorkspace("Workspace")
	suite.addMember(workspace.ID, user.ID)
	project := suite.createTestProject("project", workspace.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	labeled := suite.createTestTask("Labeled", project.ID, models.TaskStatusTodo, base)
	bare := suite.createTestTask("Bare", project.ID, models.TaskStatusTodo, base.Add(time.Minute))

	suite.createTestLabel("bug", "#ff0000", labeled.ID, base)
	suite.createTestLabel("urgent", "#ffaa00", labeled.ID, base.Add(time.Second))

	_, tasks := suite.getAllTasks(user.ID)

	suite.Require().Len(tasks, 2)
	suite.Require().Len(tasks[0].Labels, 2)
	assert.Equal(suite.T(), "bug", tasks[0].Labels[0].Name)
	assert.Equal(suite.T(), "urgent", tasks[0].Labels[1].Name)
	// Label-less tasks get an empty array, not null
	assert.NotNil(suite.T(), tasks[1].Labels)
	assert.Empty(suite.T(), tasks[1].Labels)
	assert.Equal(suite.T(), bare.ID, tasks[1].ID)
}

func (suite *DashboardHandlerTestSuite) TestGetAllTasks_ProjectDescriptor() {
	user := suite.createTestUser("proj@example.com", "Proj")
	workspace := suite.createTestWorkspace("Workspace")
	suite.addMember(workspace.ID, user.ID)

	icon := "Layout"
	project := &models.Project{
		Name:        "Roadmap",
		Slug:        "roadmap",
		Icon:        &icon,
		WorkspaceID: workspace.ID,
	}
	suite.Require().NoError(suite.db.Create(project).Error)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.createTestTask("Task", project.ID, models.TaskStatusTodo, base)

	_, tasks := suite.getAllTasks(user.ID)

	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), project.ID, tasks[0].Project.ID)
	assert.Equal(suite.T(), "Roadmap", tasks[0].Project.Name)
	assert.Equal(suite.T(), "roadmap", tasks[0].Project.Slug)
	suite.Require().NotNil(tasks[0].Project.Icon)
	assert.Equal(suite.T(), "Layout", *tasks[0].Project.Icon)
	assert.Equal(suite.T(), workspace.ID, tasks[0].Project.WorkspaceID)
}

// TestGetAllTasks_ArchivedServedButHiddenByView covers the end-to-end split:
// the server returns archived tasks, the view's fixed exclusion hides them.
func (suite *DashboardHandlerTestSuite) TestGetAllTasks_ArchivedServedButHiddenByView() {
	user := suite.createTestUser("e2e@example.com", "EndToEnd")
	w1 := suite.createTestWorkspace("W1")
	w2 := suite.createTestWorkspace("W2")
	suite.addMember(w1.ID, user.ID)

	p1 := suite.createTestProject("p1", w1.ID)
	p2 := suite.createTestProject("p2", w2.ID)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.createTestTask("Active 1", p1.ID, models.TaskStatusTodo, base)
	suite.createTestTask("Active 2", p1.ID, models.TaskStatusInProgress, base.Add(time.Minute))
	suite.createTestTask("Old", p1.ID, models.TaskStatusArchived, base.Add(2*time.Minute))
	suite.createTestTask("Foreign", p2.ID, models.TaskStatusTodo, base.Add(3*time.Minute))

	_, tasks := suite.getAllTasks(user.ID)

	// Archival filtering is a client-side exclusion: all 3 tasks from P1 come
	// back, the W2 task never does.
	suite.Require().Len(tasks, 3)

	displayed := view.Apply(tasks, view.NewState())
	assert.Len(suite.T(), displayed, 2)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
