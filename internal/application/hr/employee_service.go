package hr

import (
	"context"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService manages employee profiles
type EmployeeService struct {
	employeeRepo hr.EmployeeRepository
	logger       *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo hr.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create adds a new employee profile to the organization
func (s *EmployeeService) Create(ctx context.Context, orgID, createdBy uuid.UUID, input CreateEmployeeInput) (*EmployeeResult, error) {
	taken, err := s.employeeRepo.ExistsByNumber(ctx, orgID, input.EmployeeNumber)
	if err != nil {
		s.logger.Error("Failed to check employee number", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check employee number")
	}
	if taken {
		return nil, shared.NewDomainError("EMPLOYEE_NUMBER_TAKEN", "Employee number is already in use")
	}

	employee, err := hr.NewEmployeeProfile(orgID, input.EmployeeNumber, input.FirstName, input.LastName, input.HireDate)
	if err != nil {
		return nil, err
	}
	employee.SetCreatedBy(createdBy)
	if input.JobTitle != "" {
		employee.SetJobTitle(input.JobTitle)
	}
	employee.UserID = input.UserID

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		s.logger.Error("Failed to create employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create employee")
	}

	s.logger.Info("Employee created",
		zap.String("org_id", orgID.String()),
		zap.String("employee_id", employee.ID.String()),
		zap.String("employee_number", employee.EmployeeNumber))

	result := EmployeeResultFromDomain(employee)
	return &result, nil
}

// Update modifies an employee profile
func (s *EmployeeService) Update(ctx context.Context, orgID, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.JobTitle != nil {
		employee.SetJobTitle(*input.JobTitle)
	}
	if input.Status != nil {
		if err := employee.ChangeStatus(hr.EmployeeStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	employee.IncrementVersion()

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		s.logger.Error("Failed to update employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update employee")
	}

	result := EmployeeResultFromDomain(employee)
	return &result, nil
}

// Get returns one employee profile
func (s *EmployeeService) Get(ctx context.Context, orgID, id uuid.UUID) (*EmployeeResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	result := EmployeeResultFromDomain(employee)
	return &result, nil
}

// List returns employees matching the filter
func (s *EmployeeService) List(ctx context.Context, orgID uuid.UUID, input ListEmployeesInput) (*EmployeeListResult, error) {
	filter := hr.EmployeeFilter{
		Keyword:  input.Keyword,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if input.Status != "" {
		status := hr.EmployeeStatus(input.Status)
		filter.Status = &status
	}

	employees, total, err := s.employeeRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list employees")
	}

	items := make([]EmployeeResult, len(employees))
	for i, employee := range employees {
		items[i] = EmployeeResultFromDomain(employee)
	}
	return &EmployeeListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}
