package hr

import (
	"context"
	"testing"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository
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

func hrTestOrgID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestEmployee(t *testing.T, orgID uuid.UUID) *hr.EmployeeProfile {
	t.Helper()
	employee, err := hr.NewEmployeeProfile(orgID, "EMP-001", "Dana", "Reyes",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return employee
}

func TestEmployeeService_Create_Success(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	input := CreateEmployeeInput{
		EmployeeNumber: "EMP-007",
		FirstName:      "Dana",
		LastName:       "Reyes",
		JobTitle:       "Splicer",
		HireDate:       time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	}

	repo.On("ExistsByNumber", ctx, orgID, "EMP-007").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*hr.EmployeeProfile")).Return(nil)

	result, err := service.Create(ctx, orgID, uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, "EMP-007", result.EmployeeNumber)
	assert.Equal(t, "Dana Reyes", result.FullName)
	assert.Equal(t, "Splicer", result.JobTitle)
	assert.Equal(t, "active", result.Status)
	repo.AssertExpectations(t)
}

func TestEmployeeService_Create_NumberTaken(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	repo.On("ExistsByNumber", ctx, orgID, "EMP-001").Return(true, nil)

	_, err := service.Create(ctx, orgID, uuid.New(), CreateEmployeeInput{
		EmployeeNumber: "EMP-001",
		FirstName:      "Dana",
		LastName:       "Reyes",
		HireDate:       time.Now(),
	})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "EMPLOYEE_NUMBER_TAKEN", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Update_Terminate(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)

	repo.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	repo.On("Update", ctx, employee).Return(nil)

	status := "terminated"
	result, err := service.Update(ctx, orgID, employee.ID, UpdateEmployeeInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "terminated", result.Status)
	assert.NotNil(t, result.TerminatedAt)
	repo.AssertExpectations(t)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	id := uuid.New()
	repo.On("FindByID", ctx, orgID, id).Return(nil, shared.ErrNotFound)

	_, err := service.Get(ctx, orgID, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEmployeeService_List_FiltersByStatus(t *testing.T) {
	repo := new(MockEmployeeRepository)
	service := NewEmployeeService(repo, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)

	active := hr.EmployeeStatusActive
	repo.On("FindAll", ctx, orgID, hr.EmployeeFilter{Status: &active}).
		Return([]*hr.EmployeeProfile{employee}, int64(1), nil)

	result, err := service.List(ctx, orgID, ListEmployeesInput{Status: "active"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "EMP-001", result.Items[0].EmployeeNumber)
}
