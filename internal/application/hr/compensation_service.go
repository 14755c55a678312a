package hr

import (
	"context"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transactor runs a function inside a single database transaction
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CompensationService manages employee pay terms. At most one record per
// employee is current; creating a new one closes out the previous.
type CompensationService struct {
	employeeRepo     hr.EmployeeRepository
	compensationRepo hr.CompensationRepository
	tx               Transactor
	logger           *zap.Logger
}

// NewCompensationService creates a new compensation service
func NewCompensationService(
	employeeRepo hr.EmployeeRepository,
	compensationRepo hr.CompensationRepository,
	tx Transactor,
	logger *zap.Logger,
) *CompensationService {
	return &CompensationService{
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		tx:               tx,
		logger:           logger,
	}
}

// Create records new pay terms for an employee. The previous current
// record is demoted and the new one inserted in the same transaction.
func (s *CompensationService) Create(ctx context.Context, orgID, employeeID, createdBy uuid.UUID, input CreateCompensationInput) (*CompensationResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}

	record, err := hr.NewCompensationRecord(orgID, employee.ID, hr.PayType(input.PayType), input.EffectiveDate)
	if err != nil {
		return nil, err
	}
	record.SetCreatedBy(createdBy)
	record.Reason = input.Reason

	switch record.PayType {
	case hr.PayTypeSalary:
		if err := record.SetSalary(input.Salary); err != nil {
			return nil, err
		}
		// Salaried field crews can still clock overtime
		if input.HourlyRate.IsPositive() || input.OvertimeRate.IsPositive() {
			if err := record.SetHourlyRates(input.HourlyRate, input.OvertimeRate); err != nil {
				return nil, err
			}
		}
	default:
		if err := record.SetHourlyRates(input.HourlyRate, input.OvertimeRate); err != nil {
			return nil, err
		}
	}
	if err := record.SetPerDiem(input.PerDiem); err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.compensationRepo.DemoteCurrent(ctx, orgID, employee.ID, input.EffectiveDate); err != nil {
			return err
		}
		return s.compensationRepo.Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("Failed to create compensation record", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create compensation record")
	}

	s.logger.Info("Compensation record created",
		zap.String("org_id", orgID.String()),
		zap.String("employee_id", employee.ID.String()),
		zap.String("pay_type", record.PayType.String()))

	result := CompensationResultFromDomain(record)
	return &result, nil
}

// ListByEmployee returns an employee's compensation history, newest first
func (s *CompensationService) ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]CompensationResult, error) {
	if _, err := s.employeeRepo.FindByID(ctx, orgID, employeeID); err != nil {
		return nil, err
	}

	records, err := s.compensationRepo.FindByEmployee(ctx, orgID, employeeID)
	if err != nil {
		s.logger.Error("Failed to list compensation records", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list compensation records")
	}

	results := make([]CompensationResult, len(records))
	for i, record := range records {
		results[i] = CompensationResultFromDomain(record)
	}
	return results, nil
}

// End closes out a compensation record as of the given date. The
// employee is left without current pay terms until a new record is
// created.
func (s *CompensationService) End(ctx context.Context, orgID, employeeID, recordID uuid.UUID, input EndCompensationInput) (*CompensationResult, error) {
	record, err := s.compensationRepo.FindByID(ctx, orgID, recordID)
	if err != nil {
		return nil, err
	}
	if record.EmployeeID != employeeID {
		return nil, shared.ErrNotFound
	}

	if err := record.Close(input.EndDate); err != nil {
		return nil, err
	}

	if err := s.compensationRepo.Update(ctx, record); err != nil {
		s.logger.Error("Failed to end compensation record", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to end compensation record")
	}

	s.logger.Info("Compensation record ended",
		zap.String("org_id", orgID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.String("record_id", recordID.String()))

	result := CompensationResultFromDomain(record)
	return &result, nil
}

// GetCurrent returns the employee's current pay terms
func (s *CompensationService) GetCurrent(ctx context.Context, orgID, employeeID uuid.UUID) (*CompensationResult, error) {
	record, err := s.compensationRepo.FindCurrentByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	result := CompensationResultFromDomain(record)
	return &result, nil
}
