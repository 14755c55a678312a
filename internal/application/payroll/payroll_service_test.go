package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type payrollFixture struct {
	periods   *MockPayPeriodRepository
	runs      *MockPayRunRepository
	stubs     *MockPayStubRepository
	employees *MockEmployeeRepository
	comps     *MockCompensationRepository
	service   *PayrollService
}

func newPayrollFixture() *payrollFixture {
	f := &payrollFixture{
		periods:   new(MockPayPeriodRepository),
		runs:      new(MockPayRunRepository),
		stubs:     new(MockPayStubRepository),
		employees: new(MockEmployeeRepository),
		comps:     new(MockCompensationRepository),
	}
	f.service = NewPayrollService(f.periods, f.runs, f.stubs, f.employees, f.comps, zap.NewNop())
	return f
}

func TestPayrollService_CreatePayPeriod(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	createdBy := uuid.New()

	f.periods.On("Create", ctx, mock.AnythingOfType("*payroll.PayPeriod")).Return(nil)

	result, err := f.service.CreatePayPeriod(ctx, orgID, createdBy, CreatePayPeriodInput{
		StartDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		PayDate:    time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
		PeriodType: "biweekly",
	})

	require.NoError(t, err)
	assert.Equal(t, "biweekly", result.PeriodType)
	assert.False(t, result.IsClosed)
	f.periods.AssertExpectations(t)
}

func TestPayrollService_CreatePayPeriod_InvalidDates(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.service.CreatePayPeriod(context.Background(), calcTestOrgID(), uuid.New(), CreatePayPeriodInput{
		StartDate:  time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		PayDate:    time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
		PeriodType: "biweekly",
	})

	require.Error(t, err)
	f.periods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPayrollService_UpdatePayPeriod_Close(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	period := biweeklyMarchPeriod(t, orgID)

	f.periods.On("FindByID", ctx, orgID, period.ID).Return(period, nil)
	f.periods.On("Update", ctx, period).Return(nil)

	closed := true
	result, err := f.service.UpdatePayPeriod(ctx, orgID, period.ID, UpdatePayPeriodInput{IsClosed: &closed})

	require.NoError(t, err)
	assert.True(t, result.IsClosed)
	f.periods.AssertExpectations(t)
}

func TestPayrollService_CreatePayRun_SequencesRunNumber(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	createdBy := uuid.New()
	period := biweeklyMarchPeriod(t, orgID)

	f.periods.On("FindByID", ctx, orgID, period.ID).Return(period, nil)
	f.runs.On("CountByPeriod", ctx, orgID, period.ID).Return(int64(2), nil)
	f.runs.On("Create", ctx, mock.AnythingOfType("*payroll.PayRun")).Return(nil)

	result, err := f.service.CreatePayRun(ctx, orgID, createdBy, CreatePayRunInput{PayPeriodID: period.ID})

	require.NoError(t, err)
	assert.Equal(t, "PR-20250303-3", result.RunNumber)
	assert.Equal(t, "draft", result.Status)
	f.runs.AssertExpectations(t)
}

func TestPayrollService_CreatePayRun_ClosedPeriod(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	period := biweeklyMarchPeriod(t, orgID)
	require.NoError(t, period.Close())

	f.periods.On("FindByID", ctx, orgID, period.ID).Return(period, nil)

	_, err := f.service.CreatePayRun(ctx, orgID, uuid.New(), CreatePayRunInput{PayPeriodID: period.ID})

	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok)
	assert.Equal(t, "PERIOD_CLOSED", domainErr.Code)
	f.runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPayrollService_ProcessAndApprove(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	userID := uuid.New()
	period := biweeklyMarchPeriod(t, orgID)
	run := payroll.NewPayRun(orgID, period.ID, period.StartDate, 1)

	f.runs.On("FindByID", ctx, orgID, run.ID).Return(run, nil)
	f.runs.On("Update", ctx, run).Return(nil)

	processed, err := f.service.ProcessPayRun(ctx, orgID, run.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "processing", processed.Status)
	require.NotNil(t, processed.ProcessedBy)
	assert.Equal(t, userID, *processed.ProcessedBy)

	approved, err := f.service.ApprovePayRun(ctx, orgID, run.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedAt)
}

func TestPayrollService_ApproveDraftRejected(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	period := biweeklyMarchPeriod(t, orgID)
	run := payroll.NewPayRun(orgID, period.ID, period.StartDate, 1)

	f.runs.On("FindByID", ctx, orgID, run.ID).Return(run, nil)

	_, err := f.service.ApprovePayRun(ctx, orgID, run.ID, uuid.New())

	require.Error(t, err)
	f.runs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPayrollService_GetPayRun_IncludesStubs(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	period := biweeklyMarchPeriod(t, orgID)
	run := payroll.NewPayRun(orgID, period.ID, period.StartDate, 1)
	stub := payroll.NewPayStub(orgID, run.ID, uuid.New(), payroll.EmployeeCalculation{
		GrossPay:   decimal.NewFromInt(2000),
		TotalTaxes: decimal.NewFromFloat(514.73),
		NetPay:     decimal.NewFromFloat(1485.27),
	}, payroll.YTDTotals{})

	f.runs.On("FindByID", ctx, orgID, run.ID).Return(run, nil)
	f.stubs.On("FindByRun", ctx, orgID, run.ID).Return([]*payroll.PayStub{stub}, nil)

	result, err := f.service.GetPayRun(ctx, orgID, run.ID)

	require.NoError(t, err)
	require.Len(t, result.Stubs, 1)
	assert.Equal(t, "2000", result.Stubs[0].GrossPay.String())
}

func TestPayrollService_GetEmployeeHistory(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	employee, record := hourlyCrewMember(t, orgID, 20)

	f.employees.On("FindByID", ctx, orgID, employee.ID).Return(employee, nil)
	f.stubs.On("FindByEmployee", ctx, orgID, employee.ID).Return([]*payroll.PayStub{}, nil)
	f.comps.On("FindByEmployee", ctx, orgID, employee.ID).Return([]*hr.CompensationRecord{record}, nil)

	result, err := f.service.GetEmployeeHistory(ctx, orgID, employee.ID)

	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", result.Employee.FullName)
	require.Len(t, result.Compensation, 1)
	assert.Equal(t, "hourly", result.Compensation[0].PayType)
}

func TestPayrollService_GetStats(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()
	period := biweeklyMarchPeriod(t, orgID)

	f.employees.On("CountByStatus", ctx, orgID, hr.EmployeeStatusActive).Return(int64(12), nil)
	f.stubs.On("SumYearToDate", ctx, orgID, mock.AnythingOfType("time.Time")).Return(payroll.YTDTotals{
		Gross: decimal.NewFromInt(240000),
		Taxes: decimal.NewFromInt(61000),
		Net:   decimal.NewFromInt(179000),
	}, nil)
	f.runs.On("CountByStatuses", ctx, orgID,
		[]payroll.PayRunStatus{payroll.PayRunStatusDraft, payroll.PayRunStatusProcessing},
		mock.AnythingOfType("time.Time")).Return(int64(1), nil)
	f.runs.On("CountByStatuses", ctx, orgID,
		[]payroll.PayRunStatus{payroll.PayRunStatusDraft, payroll.PayRunStatusProcessing, payroll.PayRunStatusApproved},
		mock.AnythingOfType("time.Time")).Return(int64(6), nil)
	f.periods.On("FindCurrent", ctx, orgID, mock.AnythingOfType("time.Time")).Return(period, nil)

	stats, err := f.service.GetStats(ctx, orgID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ActiveEmployees)
	assert.Equal(t, "240000", stats.YTDGross.String())
	assert.Equal(t, int64(1), stats.PendingRuns)
	assert.Equal(t, int64(6), stats.RunsThisYear)
	require.NotNil(t, stats.CurrentPeriod)
	assert.Equal(t, period.ID, stats.CurrentPeriod.ID)
}

func TestPayrollService_GetStats_NoCurrentPeriod(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()
	orgID := calcTestOrgID()

	f.employees.On("CountByStatus", ctx, orgID, hr.EmployeeStatusActive).Return(int64(0), nil)
	f.stubs.On("SumYearToDate", ctx, orgID, mock.AnythingOfType("time.Time")).Return(payroll.YTDTotals{}, nil)
	f.runs.On("CountByStatuses", ctx, orgID, mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
	f.periods.On("FindCurrent", ctx, orgID, mock.AnythingOfType("time.Time")).Return(nil, shared.ErrNotFound)

	stats, err := f.service.GetStats(ctx, orgID)

	require.NoError(t, err)
	assert.Nil(t, stats.CurrentPeriod)
	assert.True(t, stats.YTDGross.IsZero())
}
