package payroll

import (
	"context"
	"errors"
	"time"

	apphr "github.com/fiberops/backend/internal/application/hr"
	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PayrollService manages pay periods, pay runs and pay stubs around
// the calculation engine.
type PayrollService struct {
	periodRepo       payroll.PayPeriodRepository
	runRepo          payroll.PayRunRepository
	stubRepo         payroll.PayStubRepository
	employeeRepo     hr.EmployeeRepository
	compensationRepo hr.CompensationRepository
	logger           *zap.Logger
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	periodRepo payroll.PayPeriodRepository,
	runRepo payroll.PayRunRepository,
	stubRepo payroll.PayStubRepository,
	employeeRepo hr.EmployeeRepository,
	compensationRepo hr.CompensationRepository,
	logger *zap.Logger,
) *PayrollService {
	return &PayrollService{
		periodRepo:       periodRepo,
		runRepo:          runRepo,
		stubRepo:         stubRepo,
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		logger:           logger,
	}
}

// CreatePayPeriod adds a new pay period
func (s *PayrollService) CreatePayPeriod(ctx context.Context, orgID, createdBy uuid.UUID, input CreatePayPeriodInput) (*PayPeriodResult, error) {
	period, err := payroll.NewPayPeriod(orgID, payroll.PeriodType(input.PeriodType), input.StartDate, input.EndDate, input.PayDate)
	if err != nil {
		return nil, err
	}
	period.SetCreatedBy(createdBy)

	if err := s.periodRepo.Create(ctx, period); err != nil {
		s.logger.Error("Failed to create pay period", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create pay period")
	}

	result := toPayPeriodResult(period)
	return &result, nil
}

// UpdatePayPeriod edits the pay date or closes the period
func (s *PayrollService) UpdatePayPeriod(ctx context.Context, orgID, id uuid.UUID, input UpdatePayPeriodInput) (*PayPeriodResult, error) {
	period, err := s.periodRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.PayDate != nil {
		period.PayDate = *input.PayDate
	}
	if input.IsClosed != nil && *input.IsClosed && !period.IsClosed {
		if err := period.Close(); err != nil {
			return nil, err
		}
	}
	period.IncrementVersion()

	if err := s.periodRepo.Update(ctx, period); err != nil {
		s.logger.Error("Failed to update pay period", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update pay period")
	}

	result := toPayPeriodResult(period)
	return &result, nil
}

// ListPayPeriods returns periods matching the filter
func (s *PayrollService) ListPayPeriods(ctx context.Context, orgID uuid.UUID, input ListPayPeriodsInput) (*PayPeriodListResult, error) {
	filter := payroll.PayPeriodFilter{
		IsClosed: input.IsClosed,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if input.PeriodType != "" {
		periodType := payroll.PeriodType(input.PeriodType)
		filter.PeriodType = &periodType
	}

	periods, total, err := s.periodRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list pay periods", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pay periods")
	}

	items := make([]PayPeriodResult, len(periods))
	for i, period := range periods {
		items[i] = toPayPeriodResult(period)
	}
	return &PayPeriodListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// CreatePayRun creates a draft run for a period. Run numbers are
// sequential within the period: PR-YYYYMMDD-n.
func (s *PayrollService) CreatePayRun(ctx context.Context, orgID, createdBy uuid.UUID, input CreatePayRunInput) (*PayRunResult, error) {
	period, err := s.periodRepo.FindByID(ctx, orgID, input.PayPeriodID)
	if err != nil {
		return nil, err
	}
	if period.IsClosed {
		return nil, shared.NewDomainError("PERIOD_CLOSED", "Cannot create a pay run for a closed period")
	}

	existing, err := s.runRepo.CountByPeriod(ctx, orgID, period.ID)
	if err != nil {
		s.logger.Error("Failed to count pay runs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create pay run")
	}

	run := payroll.NewPayRun(orgID, period.ID, period.StartDate, existing+1)
	run.SetCreatedBy(createdBy)
	run.Notes = input.Notes

	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Error("Failed to create pay run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create pay run")
	}

	s.logger.Info("Pay run created",
		zap.String("org_id", orgID.String()),
		zap.String("run_number", run.RunNumber))

	result := toPayRunResult(run)
	return &result, nil
}

// GetPayRun returns a run with its stubs
func (s *PayrollService) GetPayRun(ctx context.Context, orgID, id uuid.UUID) (*PayRunResult, error) {
	run, err := s.runRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	stubs, err := s.stubRepo.FindByRun(ctx, orgID, run.ID)
	if err != nil {
		s.logger.Error("Failed to load pay stubs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load pay stubs")
	}

	result := toPayRunResult(run)
	for _, stub := range stubs {
		result.Stubs = append(result.Stubs, toPayStubResult(stub))
	}
	return &result, nil
}

// ListPayRuns returns runs matching the filter
func (s *PayrollService) ListPayRuns(ctx context.Context, orgID uuid.UUID, input ListPayRunsInput) (*PayRunListResult, error) {
	filter := payroll.PayRunFilter{
		PayPeriodID: input.PayPeriodID,
		Page:        input.Page,
		PageSize:    input.PageSize,
	}
	if input.Status != "" {
		status := payroll.PayRunStatus(input.Status)
		filter.Status = &status
	}

	runs, total, err := s.runRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list pay runs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pay runs")
	}

	items := make([]PayRunResult, len(runs))
	for i, run := range runs {
		items[i] = toPayRunResult(run)
	}
	return &PayRunListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// ProcessPayRun transitions a run from draft to processing
func (s *PayrollService) ProcessPayRun(ctx context.Context, orgID, id, userID uuid.UUID) (*PayRunResult, error) {
	run, err := s.runRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := run.Process(userID); err != nil {
		return nil, err
	}
	if err := s.runRepo.Update(ctx, run); err != nil {
		s.logger.Error("Failed to process pay run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process pay run")
	}

	s.logger.Info("Pay run processing",
		zap.String("run_number", run.RunNumber),
		zap.String("processed_by", userID.String()))

	result := toPayRunResult(run)
	return &result, nil
}

// ApprovePayRun transitions a run from processing to approved
func (s *PayrollService) ApprovePayRun(ctx context.Context, orgID, id, userID uuid.UUID) (*PayRunResult, error) {
	run, err := s.runRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := run.Approve(userID); err != nil {
		return nil, err
	}
	if err := s.runRepo.Update(ctx, run); err != nil {
		s.logger.Error("Failed to approve pay run", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to approve pay run")
	}

	s.logger.Info("Pay run approved",
		zap.String("run_number", run.RunNumber),
		zap.String("approved_by", userID.String()))

	result := toPayRunResult(run)
	return &result, nil
}

// ListPayStubs returns stubs matching the filter
func (s *PayrollService) ListPayStubs(ctx context.Context, orgID uuid.UUID, input ListPayStubsInput) (*PayStubListResult, error) {
	filter := payroll.PayStubFilter{
		PayRunID:   input.PayRunID,
		EmployeeID: input.EmployeeID,
		Page:       input.Page,
		PageSize:   input.PageSize,
	}

	stubs, total, err := s.stubRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list pay stubs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list pay stubs")
	}

	items := make([]PayStubResult, len(stubs))
	for i, stub := range stubs {
		items[i] = toPayStubResult(stub)
	}
	return &PayStubListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// GetPayStub returns one stub with its withholding and deduction lines
func (s *PayrollService) GetPayStub(ctx context.Context, orgID, id uuid.UUID) (*PayStubResult, error) {
	stub, err := s.stubRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.stubRepo.LoadLines(ctx, stub); err != nil {
		s.logger.Error("Failed to load stub lines", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load pay stub")
	}
	result := toPayStubResult(stub)
	return &result, nil
}

// GetEmployeeHistory returns an employee's stubs and compensation records
func (s *PayrollService) GetEmployeeHistory(ctx context.Context, orgID, employeeID uuid.UUID) (*EmployeeHistoryResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}

	stubs, err := s.stubRepo.FindByEmployee(ctx, orgID, employee.ID)
	if err != nil {
		s.logger.Error("Failed to load employee stubs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load pay history")
	}
	records, err := s.compensationRepo.FindByEmployee(ctx, orgID, employee.ID)
	if err != nil {
		s.logger.Error("Failed to load compensation history", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load pay history")
	}

	result := &EmployeeHistoryResult{
		Employee: apphr.EmployeeResultFromDomain(employee),
	}
	for _, stub := range stubs {
		result.Stubs = append(result.Stubs, toPayStubResult(stub))
	}
	for _, record := range records {
		result.Compensation = append(result.Compensation, apphr.CompensationResultFromDomain(record))
	}
	return result, nil
}

// GetStats returns the payroll dashboard summary for the current year
func (s *PayrollService) GetStats(ctx context.Context, orgID uuid.UUID) (*StatsResult, error) {
	now := time.Now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	activeEmployees, err := s.employeeRepo.CountByStatus(ctx, orgID, hr.EmployeeStatusActive)
	if err != nil {
		s.logger.Error("Failed to count employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payroll stats")
	}

	totals, err := s.stubRepo.SumYearToDate(ctx, orgID, yearStart)
	if err != nil {
		s.logger.Error("Failed to sum year-to-date totals", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payroll stats")
	}

	pending, err := s.runRepo.CountByStatuses(ctx, orgID,
		[]payroll.PayRunStatus{payroll.PayRunStatusDraft, payroll.PayRunStatusProcessing}, yearStart)
	if err != nil {
		s.logger.Error("Failed to count pending runs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payroll stats")
	}
	runsThisYear, err := s.runRepo.CountByStatuses(ctx, orgID,
		[]payroll.PayRunStatus{payroll.PayRunStatusDraft, payroll.PayRunStatusProcessing, payroll.PayRunStatusApproved}, yearStart)
	if err != nil {
		s.logger.Error("Failed to count runs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payroll stats")
	}

	stats := &StatsResult{
		ActiveEmployees: activeEmployees,
		YTDGross:        totals.Gross,
		YTDTaxes:        totals.Taxes,
		YTDNet:          totals.Net,
		PendingRuns:     pending,
		RunsThisYear:    runsThisYear,
	}

	current, err := s.periodRepo.FindCurrent(ctx, orgID, now)
	if err == nil {
		period := toPayPeriodResult(current)
		stats.CurrentPeriod = &period
	} else if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to find current pay period", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load payroll stats")
	}

	return stats, nil
}
