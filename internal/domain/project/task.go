package project

import (
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskStatus represents the state of a unit of project work
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// IsValid returns true for a recognized status
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	}
	return false
}

// String returns the status as a string
func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work on a project, typically a footage-based
// construction segment assigned to one employee.
type Task struct {
	shared.OrgAggregateRoot
	ProjectID       uuid.UUID
	Name            string
	Status          TaskStatus
	AssignedTo      *uuid.UUID
	FootagePlanned  decimal.Decimal
	FootageComplete decimal.Decimal
	Notes           string
}

// NewTask creates a new pending task on a project
func NewTask(orgID, projectID uuid.UUID, name string) (*Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TASK_NAME", "Task name cannot be empty")
	}
	return &Task{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		ProjectID:        projectID,
		Name:             name,
		Status:           TaskStatusPending,
	}, nil
}

// Assign sets the responsible employee
func (t *Task) Assign(employeeID uuid.UUID) {
	t.AssignedTo = &employeeID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// ChangeStatus transitions the task status
func (t *Task) ChangeStatus(status TaskStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown task status")
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// RecordFootage updates completed footage; it cannot exceed planned
// footage when a plan is set.
func (t *Task) RecordFootage(complete decimal.Decimal) error {
	if complete.IsNegative() {
		return shared.NewDomainError("INVALID_FOOTAGE", "Footage cannot be negative")
	}
	if t.FootagePlanned.IsPositive() && complete.GreaterThan(t.FootagePlanned) {
		return shared.NewDomainError("INVALID_FOOTAGE", "Completed footage cannot exceed planned footage")
	}
	t.FootageComplete = complete
	t.UpdatedAt = time.Now()
	return nil
}
