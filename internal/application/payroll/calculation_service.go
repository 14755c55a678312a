package payroll

import (
	"context"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Transactor runs a function inside a single database transaction
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CalculationService runs the gross-to-net engine for a pay run. One
// calculation touches every employee with current pay terms; all of its
// writes commit or roll back together.
type CalculationService struct {
	runRepo          payroll.PayRunRepository
	periodRepo       payroll.PayPeriodRepository
	stubRepo         payroll.PayStubRepository
	employeeRepo     hr.EmployeeRepository
	compensationRepo hr.CompensationRepository
	timeEntryRepo    hr.TimeEntryRepository
	calculator       *payroll.Calculator
	tx               Transactor
	logger           *zap.Logger
}

// NewCalculationService creates a new calculation service
func NewCalculationService(
	runRepo payroll.PayRunRepository,
	periodRepo payroll.PayPeriodRepository,
	stubRepo payroll.PayStubRepository,
	employeeRepo hr.EmployeeRepository,
	compensationRepo hr.CompensationRepository,
	timeEntryRepo hr.TimeEntryRepository,
	calculator *payroll.Calculator,
	tx Transactor,
	logger *zap.Logger,
) *CalculationService {
	return &CalculationService{
		runRepo:          runRepo,
		periodRepo:       periodRepo,
		stubRepo:         stubRepo,
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		timeEntryRepo:    timeEntryRepo,
		calculator:       calculator,
		tx:               tx,
		logger:           logger,
	}
}

// Calculate runs payroll for every employee with current pay terms.
// Recalculating a run replaces its stubs; an approved run cannot be
// recalculated.
func (s *CalculationService) Calculate(ctx context.Context, orgID uuid.UUID, input CalculateInput) (*CalculateResult, error) {
	run, err := s.runRepo.FindByID(ctx, orgID, input.PayRunID)
	if err != nil {
		return nil, err
	}
	if !run.CanCalculate() {
		return nil, shared.NewDomainError("INVALID_STATE", "Approved pay runs cannot be recalculated")
	}

	period, err := s.periodRepo.FindByID(ctx, orgID, run.PayPeriodID)
	if err != nil {
		return nil, err
	}

	records, err := s.compensationRepo.FindAllCurrent(ctx, orgID)
	if err != nil {
		s.logger.Error("Failed to load compensation records", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to calculate payroll")
	}
	if len(records) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "No active compensation records")
	}

	result := &CalculateResult{
		PayRunID:  run.ID,
		RunNumber: run.RunNumber,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		var totalGross, totalDeductions, totalTaxes, totalNet decimal.Decimal

		for _, record := range records {
			employee, err := s.employeeRepo.FindByID(ctx, orgID, record.EmployeeID)
			if err != nil {
				return err
			}

			calc, ytd, err := s.calculateEmployee(ctx, run, period, record)
			if err != nil {
				return err
			}

			if err := s.stubRepo.DeleteByRunAndEmployee(ctx, orgID, run.ID, employee.ID); err != nil {
				return err
			}
			stub := payroll.NewPayStub(orgID, run.ID, employee.ID, calc, ytd)
			if err := s.stubRepo.Create(ctx, stub); err != nil {
				return err
			}

			totalGross = totalGross.Add(calc.GrossPay)
			totalTaxes = totalTaxes.Add(calc.TotalTaxes)
			totalNet = totalNet.Add(calc.NetPay)

			result.Employees = append(result.Employees, EmployeeCalculationResult{
				EmployeeID:    employee.ID,
				EmployeeName:  employee.FullName(),
				RegularHours:  calc.RegularHours,
				OvertimeHours: calc.OvertimeHours,
				GrossPay:      calc.GrossPay,
				TotalTaxes:    calc.TotalTaxes,
				NetPay:        calc.NetPay,
			})
		}

		run.ApplyTotals(totalGross, totalDeductions, totalTaxes, totalNet, len(result.Employees))
		return s.runRepo.Update(ctx, run)
	})
	if err != nil {
		if _, ok := err.(*shared.DomainError); ok {
			return nil, err
		}
		s.logger.Error("Payroll calculation failed",
			zap.String("run_number", run.RunNumber),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to calculate payroll")
	}

	result.EmployeeCount = run.EmployeeCount
	result.TotalGross = run.TotalGross
	result.TotalDeductions = run.TotalDeductions
	result.TotalTaxes = run.TotalTaxes
	result.TotalNet = run.TotalNet

	s.logger.Info("Payroll calculated",
		zap.String("org_id", orgID.String()),
		zap.String("run_number", run.RunNumber),
		zap.Int("employees", run.EmployeeCount),
		zap.String("total_gross", run.TotalGross.String()))

	return result, nil
}

// calculateEmployee runs the gross-to-net math for one employee using
// their closed time entries in the period and their stubs from earlier
// runs this year.
func (s *CalculationService) calculateEmployee(
	ctx context.Context,
	run *payroll.PayRun,
	period *payroll.PayPeriod,
	record *hr.CompensationRecord,
) (payroll.EmployeeCalculation, payroll.YTDTotals, error) {
	entries, err := s.timeEntryRepo.FindClosedInRange(ctx, record.OrgID, record.EmployeeID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.EmployeeCalculation{}, payroll.YTDTotals{}, err
	}
	worked := make([]payroll.WorkedHours, 0, len(entries))
	for _, entry := range entries {
		if entry.TotalHours == nil {
			continue
		}
		worked = append(worked, payroll.WorkedHours{
			Start: entry.ClockIn,
			Hours: *entry.TotalHours,
		})
	}

	priorStubs, err := s.stubRepo.FindYearToDate(ctx, record.OrgID, record.EmployeeID, period.YearStart(), run.ID)
	if err != nil {
		return payroll.EmployeeCalculation{}, payroll.YTDTotals{}, err
	}
	var ytd payroll.YTDTotals
	for _, prior := range priorStubs {
		ytd = ytd.Accumulate(prior)
	}

	comp := payroll.CompensationInput{
		Salaried:     record.PayType == hr.PayTypeSalary,
		HourlyRate:   record.HourlyRate,
		OvertimeRate: record.OvertimeRate,
		Salary:       record.Salary,
		PerDiem:      record.PerDiem,
	}
	calc := s.calculator.Calculate(comp, worked, period.PeriodType.PeriodsPerYear(), ytd.Gross)
	return calc, ytd, nil
}
