package hr

import (
	"context"
	"testing"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCompensationRepository is a mock implementation of CompensationRepository
type MockCompensationRepository struct {
	mock.Mock
}

func (m *MockCompensationRepository) Create(ctx context.Context, record *hr.CompensationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCompensationRepository) Update(ctx context.Context, record *hr.CompensationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCompensationRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*hr.CompensationRecord, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.CompensationRecord), args.Error(1)
}

func (m *MockCompensationRepository) FindByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]*hr.CompensationRecord, error) {
	args := m.Called(ctx, orgID, employeeID)
	return args.Get(0).([]*hr.CompensationRecord), args.Error(1)
}

func (m *MockCompensationRepository) FindCurrentByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*hr.CompensationRecord, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.CompensationRecord), args.Error(1)
}

func (m *MockCompensationRepository) FindAllCurrent(ctx context.Context, orgID uuid.UUID) ([]*hr.CompensationRecord, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]*hr.CompensationRecord), args.Error(1)
}

func (m *MockCompensationRepository) DemoteCurrent(ctx context.Context, orgID, employeeID uuid.UUID, endDate time.Time) error {
	args := m.Called(ctx, orgID, employeeID, endDate)
	return args.Error(0)
}

// passthroughTx runs the function directly, without a real transaction
type passthroughTx struct{}

func (passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCompensationService_Create_HourlyDemotesPrevious(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	compRepo.On("DemoteCurrent", ctx, orgID, employee.ID, effective).Return(nil)
	compRepo.On("Create", ctx, mock.AnythingOfType("*hr.CompensationRecord")).Return(nil)

	result, err := service.Create(ctx, orgID, employee.ID, uuid.New(), CreateCompensationInput{
		PayType:       "hourly",
		HourlyRate:    decimal.NewFromFloat(24.50),
		OvertimeRate:  decimal.NewFromFloat(36.75),
		PerDiem:       decimal.NewFromInt(40),
		EffectiveDate: effective,
		Reason:        "Annual raise",
	})

	require.NoError(t, err)
	assert.Equal(t, "hourly", result.PayType)
	assert.Equal(t, "24.5", result.HourlyRate.String())
	assert.True(t, result.IsCurrent)
	compRepo.AssertExpectations(t)
}

func TestCompensationService_Create_HourlyDefaultsOvertimeRate(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	compRepo.On("DemoteCurrent", ctx, orgID, employee.ID, effective).Return(nil)
	compRepo.On("Create", ctx, mock.AnythingOfType("*hr.CompensationRecord")).Return(nil)

	result, err := service.Create(ctx, orgID, employee.ID, uuid.New(), CreateCompensationInput{
		PayType:       "hourly",
		HourlyRate:    decimal.NewFromInt(20),
		EffectiveDate: effective,
	})

	require.NoError(t, err)
	// 1.5x the hourly rate when no explicit overtime rate is given
	assert.Equal(t, "30", result.OvertimeRate.String())
}

func TestCompensationService_Create_Salary(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	effective := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	compRepo.On("DemoteCurrent", ctx, orgID, employee.ID, effective).Return(nil)
	compRepo.On("Create", ctx, mock.AnythingOfType("*hr.CompensationRecord")).Return(nil)

	result, err := service.Create(ctx, orgID, employee.ID, uuid.New(), CreateCompensationInput{
		PayType:       "salary",
		Salary:        decimal.NewFromInt(78000),
		EffectiveDate: effective,
	})

	require.NoError(t, err)
	assert.Equal(t, "salary", result.PayType)
	assert.Equal(t, "78000", result.Salary.String())
}

func TestCompensationService_Create_EmployeeNotFound(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employeeID := uuid.New()
	employeeRepo.On("FindByID", ctx, orgID, employeeID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(ctx, orgID, employeeID, uuid.New(), CreateCompensationInput{
		PayType:       "hourly",
		HourlyRate:    decimal.NewFromInt(20),
		EffectiveDate: time.Now(),
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	compRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompensationService_End(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	effective := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	record, err := hr.NewCompensationRecord(orgID, employee.ID, hr.PayTypeHourly, effective)
	require.NoError(t, err)
	require.NoError(t, record.SetHourlyRates(decimal.NewFromInt(25), decimal.Zero))

	compRepo.On("FindByID", ctx, orgID, record.ID).Return(record, nil)
	compRepo.On("Update", ctx, record).Return(nil)

	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	result, err := service.End(ctx, orgID, employee.ID, record.ID, EndCompensationInput{EndDate: endDate})

	require.NoError(t, err)
	assert.False(t, result.IsCurrent)
	require.NotNil(t, result.EndDate)
	assert.True(t, endDate.Equal(*result.EndDate))
}

func TestCompensationService_End_WrongEmployee(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	record, err := hr.NewCompensationRecord(orgID, uuid.New(), hr.PayTypeHourly, time.Now())
	require.NoError(t, err)

	compRepo.On("FindByID", ctx, orgID, record.ID).Return(record, nil)

	_, err = service.End(ctx, orgID, uuid.New(), record.ID, EndCompensationInput{EndDate: time.Now()})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	compRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompensationService_End_BeforeEffectiveDate(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	effective := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	record, err := hr.NewCompensationRecord(orgID, employee.ID, hr.PayTypeHourly, effective)
	require.NoError(t, err)

	compRepo.On("FindByID", ctx, orgID, record.ID).Return(record, nil)

	_, err = service.End(ctx, orgID, employee.ID, record.ID, EndCompensationInput{
		EndDate: effective.AddDate(0, -1, 0),
	})

	assert.Error(t, err)
	compRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompensationService_GetCurrent(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	compRepo := new(MockCompensationRepository)
	service := NewCompensationService(employeeRepo, compRepo, passthroughTx{}, zap.NewNop())

	ctx := context.Background()
	orgID := hrTestOrgID()
	employee := newTestEmployee(t, orgID)
	record, err := hr.NewCompensationRecord(orgID, employee.ID, hr.PayTypeHourly, time.Now())
	require.NoError(t, err)
	require.NoError(t, record.SetHourlyRates(decimal.NewFromFloat(22.50), decimal.Zero))

	compRepo.On("FindCurrentByEmployee", ctx, orgID, employee.ID).Return(record, nil)

	result, err := service.GetCurrent(ctx, orgID, employee.ID)

	require.NoError(t, err)
	assert.Equal(t, "22.5", result.HourlyRate.String())
	assert.True(t, result.IsCurrent)
}
