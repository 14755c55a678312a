package project

import (
	"context"
	"testing"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/project"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter project.ProjectFilter) ([]*project.Project, int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]*project.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) ExistsByCode(ctx context.Context, orgID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, orgID, code)
	return args.Bool(0), args.Error(1)
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *project.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *project.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*project.Task, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByProject(ctx context.Context, orgID, projectID uuid.UUID) ([]*project.Task, error) {
	args := m.Called(ctx, orgID, projectID)
	return args.Get(0).([]*project.Task), args.Error(1)
}

// MockEmployeeRepository is a mock implementation of hr.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *hr.EmployeeProfile) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *hr.EmployeeProfile) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*hr.EmployeeProfile, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter hr.EmployeeFilter) ([]*hr.EmployeeProfile, int64, error) {
	args := m.Called(ctx, orgID, filter)
	return args.Get(0).([]*hr.EmployeeProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) ExistsByNumber(ctx context.Context, orgID uuid.UUID, employeeNumber string) (bool, error) {
	args := m.Called(ctx, orgID, employeeNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) CountByStatus(ctx context.Context, orgID uuid.UUID, status hr.EmployeeStatus) (int64, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*ProjectService, *MockProjectRepository, *MockTaskRepository, *MockEmployeeRepository) {
	projectRepo := new(MockProjectRepository)
	taskRepo := new(MockTaskRepository)
	employeeRepo := new(MockEmployeeRepository)
	service := NewProjectService(projectRepo, taskRepo, employeeRepo, zap.NewNop())
	return service, projectRepo, taskRepo, employeeRepo
}

func newTestProject(t *testing.T, orgID uuid.UUID) *project.Project {
	t.Helper()
	p, err := project.NewProject(orgID, "Westside Phase 2", "WST-P2")
	require.NoError(t, err)
	return p
}

func TestProjectService_Create(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()

	projectRepo.On("ExistsByCode", ctx, orgID, "WST-P2").Return(false, nil)
	projectRepo.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

	result, err := service.Create(ctx, orgID, uuid.New(), CreateProjectInput{
		Name:          "Westside Phase 2",
		Code:          "wst-p2",
		City:          "Charlotte",
		State:         "NC",
		ContractValue: decimal.NewFromFloat(125000.999),
	})

	require.NoError(t, err)
	assert.Equal(t, "WST-P2", result.Code)
	assert.Equal(t, "planning", result.Status)
	assert.Equal(t, "125001.00", result.ContractValue.StringFixed(2))
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Create_DuplicateCode(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()

	projectRepo.On("ExistsByCode", ctx, orgID, "WST-P2").Return(true, nil)

	_, err := service.Create(ctx, orgID, uuid.New(), CreateProjectInput{
		Name: "Westside Phase 2",
		Code: "WST-P2",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PROJECT_CODE_TAKEN", domainErr.Code)
	projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Create_NegativeContractValue(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()

	projectRepo.On("ExistsByCode", ctx, orgID, "WST-P2").Return(false, nil)

	_, err := service.Create(ctx, orgID, uuid.New(), CreateProjectInput{
		Name:          "Westside Phase 2",
		Code:          "WST-P2",
		ContractValue: decimal.NewFromInt(-1),
	})

	require.Error(t, err)
	projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Update(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)
	projectRepo.On("Update", ctx, p).Return(nil)

	status := "active"
	city := "Raleigh"
	result, err := service.Update(ctx, orgID, p.ID, UpdateProjectInput{
		Status: &status,
		City:   &city,
	})

	require.NoError(t, err)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, "Raleigh", result.City)
	// State untouched by a partial update
	assert.Equal(t, p.State, result.State)
}

func TestProjectService_Update_InvalidStatus(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)

	status := "launched"
	_, err := service.Update(ctx, orgID, p.ID, UpdateProjectInput{Status: &status})

	require.Error(t, err)
	projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	id := uuid.New()

	projectRepo.On("FindByID", ctx, orgID, id).Return(nil, shared.ErrNotFound)

	_, err := service.Update(ctx, orgID, id, UpdateProjectInput{})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProjectService_List(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	projectRepo.On("FindAll", ctx, orgID, mock.MatchedBy(func(f project.ProjectFilter) bool {
		return f.Status != nil && *f.Status == project.ProjectStatusActive && f.Keyword == "west"
	})).Return([]*project.Project{p}, int64(1), nil)

	result, err := service.List(ctx, orgID, ListProjectsInput{
		Status:  "active",
		Keyword: "west",
		Page:    1,
	})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
	// Default page size applied when none requested
	assert.Equal(t, 20, result.PageSize)
}

func TestProjectService_Delete(t *testing.T) {
	service, projectRepo, _, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)
	projectRepo.On("Delete", ctx, orgID, p.ID).Return(nil)

	err := service.Delete(ctx, orgID, p.ID)

	require.NoError(t, err)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_CreateTask(t *testing.T) {
	service, projectRepo, taskRepo, employeeRepo := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	employee, err := hr.NewEmployeeProfile(orgID, "EMP-001", "Maria", "Lopez", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)
	employeeRepo.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	taskRepo.On("Create", ctx, mock.AnythingOfType("*project.Task")).Return(nil)

	result, err := service.CreateTask(ctx, orgID, p.ID, uuid.New(), CreateTaskInput{
		Name:           "Bore Main St crossing",
		AssignedTo:     &employee.ID,
		FootagePlanned: decimal.NewFromInt(850),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", result.Status)
	require.NotNil(t, result.AssignedTo)
	assert.Equal(t, employee.ID, *result.AssignedTo)
	taskRepo.AssertExpectations(t)
}

func TestProjectService_CreateTask_UnknownAssignee(t *testing.T) {
	service, projectRepo, taskRepo, employeeRepo := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)
	employeeID := uuid.New()

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)
	employeeRepo.On("FindByID", ctx, orgID, employeeID).Return(nil, shared.ErrNotFound)

	_, err := service.CreateTask(ctx, orgID, p.ID, uuid.New(), CreateTaskInput{
		Name:       "Bore Main St crossing",
		AssignedTo: &employeeID,
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_UpdateTask_FootageExceedsPlanned(t *testing.T) {
	service, _, taskRepo, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()

	task, err := project.NewTask(orgID, uuid.New(), "Bore Main St crossing")
	require.NoError(t, err)
	task.FootagePlanned = decimal.NewFromInt(500)

	taskRepo.On("FindByID", ctx, orgID, task.ID).Return(task, nil)

	complete := decimal.NewFromInt(600)
	_, err = service.UpdateTask(ctx, orgID, task.ID, UpdateTaskInput{FootageComplete: &complete})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_FOOTAGE", domainErr.Code)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_UpdateTask(t *testing.T) {
	service, _, taskRepo, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()

	task, err := project.NewTask(orgID, uuid.New(), "Bore Main St crossing")
	require.NoError(t, err)
	task.FootagePlanned = decimal.NewFromInt(500)

	taskRepo.On("FindByID", ctx, orgID, task.ID).Return(task, nil)
	taskRepo.On("Update", ctx, task).Return(nil)

	status := "in_progress"
	complete := decimal.NewFromInt(320)
	result, err := service.UpdateTask(ctx, orgID, task.ID, UpdateTaskInput{
		Status:          &status,
		FootageComplete: &complete,
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, "320", result.FootageComplete.String())
}

func TestProjectService_ListTasks(t *testing.T) {
	service, projectRepo, taskRepo, _ := newTestService()
	ctx := context.Background()
	orgID := uuid.New()
	p := newTestProject(t, orgID)

	task, err := project.NewTask(orgID, p.ID, "Bore Main St crossing")
	require.NoError(t, err)

	projectRepo.On("FindByID", ctx, orgID, p.ID).Return(p, nil)
	taskRepo.On("FindByProject", ctx, orgID, p.ID).Return([]*project.Task{task}, nil)

	results, err := service.ListTasks(ctx, orgID, p.ID)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, p.ID, results[0].ProjectID)
}
