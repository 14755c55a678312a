package hr

import (
	"context"
	"errors"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimeEntryService manages clock-in/out and manual time entries
type TimeEntryService struct {
	employeeRepo  hr.EmployeeRepository
	timeEntryRepo hr.TimeEntryRepository
	logger        *zap.Logger
}

// NewTimeEntryService creates a new time entry service
func NewTimeEntryService(
	employeeRepo hr.EmployeeRepository,
	timeEntryRepo hr.TimeEntryRepository,
	logger *zap.Logger,
) *TimeEntryService {
	return &TimeEntryService{
		employeeRepo:  employeeRepo,
		timeEntryRepo: timeEntryRepo,
		logger:        logger,
	}
}

// ClockIn opens a new time entry. An employee can only have one open
// entry at a time.
func (s *TimeEntryService) ClockIn(ctx context.Context, orgID, createdBy uuid.UUID, input ClockInInput) (*TimeEntryResult, error) {
	employee, err := s.employeeRepo.FindByID(ctx, orgID, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive() {
		return nil, shared.NewDomainError("EMPLOYEE_INACTIVE", "Only active employees can clock in")
	}

	if _, err := s.timeEntryRepo.FindOpenByEmployee(ctx, orgID, employee.ID); err == nil {
		return nil, shared.NewDomainError("ALREADY_CLOCKED_IN", "Employee already has an open time entry")
	} else if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to check open time entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check open time entry")
	}

	clockIn := time.Now()
	if input.ClockIn != nil {
		clockIn = *input.ClockIn
	}

	entry := hr.NewTimeEntry(orgID, employee.ID, clockIn)
	entry.SetCreatedBy(createdBy)
	entry.SetNotes(input.Notes)

	if err := s.timeEntryRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create time entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to clock in")
	}

	result := toTimeEntryResult(entry)
	return &result, nil
}

// ClockOut closes an open time entry and derives its total hours
func (s *TimeEntryService) ClockOut(ctx context.Context, orgID, entryID uuid.UUID, input ClockOutInput) (*TimeEntryResult, error) {
	entry, err := s.timeEntryRepo.FindByID(ctx, orgID, entryID)
	if err != nil {
		return nil, err
	}

	if input.BreakMinutes != nil {
		if err := entry.SetBreakMinutes(*input.BreakMinutes); err != nil {
			return nil, err
		}
	}

	clockOut := time.Now()
	if input.ClockOut != nil {
		clockOut = *input.ClockOut
	}
	if err := entry.Close(clockOut); err != nil {
		return nil, err
	}

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to close time entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to clock out")
	}

	result := toTimeEntryResult(entry)
	return &result, nil
}

// Create records a closed entry manually, e.g. a backfilled shift
func (s *TimeEntryService) Create(ctx context.Context, orgID, createdBy uuid.UUID, input CreateTimeEntryInput) (*TimeEntryResult, error) {
	if _, err := s.employeeRepo.FindByID(ctx, orgID, input.EmployeeID); err != nil {
		return nil, err
	}

	entry, err := hr.NewClosedTimeEntry(orgID, input.EmployeeID, input.ClockIn, input.ClockOut, input.BreakMinutes)
	if err != nil {
		return nil, err
	}
	entry.SetCreatedBy(createdBy)
	entry.SetNotes(input.Notes)

	if err := s.timeEntryRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create time entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create time entry")
	}

	result := toTimeEntryResult(entry)
	return &result, nil
}

// Update edits an entry. Changing the clock times on a closed entry
// re-derives its total.
func (s *TimeEntryService) Update(ctx context.Context, orgID, entryID uuid.UUID, input UpdateTimeEntryInput) (*TimeEntryResult, error) {
	entry, err := s.timeEntryRepo.FindByID(ctx, orgID, entryID)
	if err != nil {
		return nil, err
	}

	if input.Notes != nil {
		entry.SetNotes(*input.Notes)
	}

	clockIn := entry.ClockIn
	if input.ClockIn != nil {
		clockIn = *input.ClockIn
	}
	breakMinutes := entry.BreakMinutes
	if input.BreakMinutes != nil {
		breakMinutes = *input.BreakMinutes
	}
	clockOut := entry.ClockOut
	if input.ClockOut != nil {
		clockOut = input.ClockOut
	}

	if input.ClockIn != nil || input.ClockOut != nil || input.BreakMinutes != nil {
		if clockOut == nil {
			entry.ClockIn = clockIn
			if err := entry.SetBreakMinutes(breakMinutes); err != nil {
				return nil, err
			}
		} else {
			rebuilt, err := hr.NewClosedTimeEntry(entry.OrgID, entry.EmployeeID, clockIn, *clockOut, breakMinutes)
			if err != nil {
				return nil, err
			}
			entry.ClockIn = rebuilt.ClockIn
			entry.ClockOut = rebuilt.ClockOut
			entry.BreakMinutes = rebuilt.BreakMinutes
			entry.TotalHours = rebuilt.TotalHours
		}
	}
	entry.IncrementVersion()

	if err := s.timeEntryRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to update time entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update time entry")
	}

	result := toTimeEntryResult(entry)
	return &result, nil
}

// Delete removes an entry
func (s *TimeEntryService) Delete(ctx context.Context, orgID, entryID uuid.UUID) error {
	return s.timeEntryRepo.Delete(ctx, orgID, entryID)
}

// List returns entries matching the filter
func (s *TimeEntryService) List(ctx context.Context, orgID uuid.UUID, input ListTimeEntriesInput) (*TimeEntryListResult, error) {
	filter := hr.TimeEntryFilter{
		EmployeeID: input.EmployeeID,
		From:       input.From,
		To:         input.To,
		Page:       input.Page,
		PageSize:   input.PageSize,
	}

	entries, total, err := s.timeEntryRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list time entries", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list time entries")
	}

	items := make([]TimeEntryResult, len(entries))
	for i, entry := range entries {
		items[i] = toTimeEntryResult(entry)
	}
	return &TimeEntryListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}
