package project

import (
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle state of a build project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsValid returns true for a recognized status
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// String returns the status as a string
func (s ProjectStatus) String() string {
	return string(s)
}

// Project is a fiber build job: a geographic scope of work with a
// contract value and a schedule.
type Project struct {
	shared.OrgAggregateRoot
	Name          string
	Code          string
	Status        ProjectStatus
	City          string
	State         string
	Latitude      *decimal.Decimal
	Longitude     *decimal.Decimal
	ContractValue decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	Description   string
}

// NewProject creates a new project in planning
func NewProject(orgID uuid.UUID, name, code string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_CODE", "Project code cannot be empty")
	}
	return &Project{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		Name:             name,
		Code:             code,
		Status:           ProjectStatusPlanning,
	}, nil
}

// ChangeStatus transitions the project status
func (p *Project) ChangeStatus(status ProjectStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown project status")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetLocation sets the city/state and optional coordinates
func (p *Project) SetLocation(city, state string, lat, lng *decimal.Decimal) {
	p.City = strings.TrimSpace(city)
	p.State = strings.TrimSpace(state)
	p.Latitude = lat
	p.Longitude = lng
	p.UpdatedAt = time.Now()
}

// SetContractValue sets the contract value
func (p *Project) SetContractValue(value valueobject.Money) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_CONTRACT_VALUE", "Contract value cannot be negative")
	}
	p.ContractValue = value.RoundCents().Amount()
	p.UpdatedAt = time.Now()
	return nil
}

// GetContractValueMoney returns the contract value as Money
func (p *Project) GetContractValueMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.ContractValue)
}

// SetSchedule sets the planned start and end dates
func (p *Project) SetSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_SCHEDULE", "End date cannot precede start date")
	}
	p.StartDate = start
	p.EndDate = end
	p.UpdatedAt = time.Now()
	return nil
}
