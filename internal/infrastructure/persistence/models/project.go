package models

import (
	"time"

	"github.com/fiberops/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for projects
type ProjectModel struct {
	OrgAggregateModel
	Name          string `gorm:"type:varchar(200);not null"`
	Code          string `gorm:"type:varchar(50);not null;index"`
	Status        string `gorm:"type:varchar(20);not null;index"`
	City          string `gorm:"type:varchar(100)"`
	State         string `gorm:"type:varchar(50)"`
	Latitude      *decimal.Decimal `gorm:"type:decimal(10,7)"`
	Longitude     *decimal.Decimal `gorm:"type:decimal(10,7)"`
	ContractValue decimal.Decimal  `gorm:"type:decimal(14,2);not null;default:0"`
	StartDate     *time.Time
	EndDate       *time.Time
	Description   string `gorm:"type:varchar(2000)"`
}

// TableName returns the table name
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the model to a domain project
func (m *ProjectModel) ToDomain() *project.Project {
	p := &project.Project{
		Name:          m.Name,
		Code:          m.Code,
		Status:        project.ProjectStatus(m.Status),
		City:          m.City,
		State:         m.State,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		ContractValue: m.ContractValue,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Description:   m.Description,
	}
	m.PopulateOrgAggregateRoot(&p.OrgAggregateRoot)
	return p
}

// FromDomain populates the model from a domain project
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainOrgAggregateRoot(p.OrgAggregateRoot)
	m.Name = p.Name
	m.Code = p.Code
	m.Status = p.Status.String()
	m.City = p.City
	m.State = p.State
	m.Latitude = p.Latitude
	m.Longitude = p.Longitude
	m.ContractValue = p.ContractValue
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.Description = p.Description
}

// TaskModel is the persistence model for project tasks
type TaskModel struct {
	OrgAggregateModel
	ProjectID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name            string     `gorm:"type:varchar(200);not null"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	AssignedTo      *uuid.UUID `gorm:"type:uuid;index"`
	FootagePlanned  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FootageComplete decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes           string          `gorm:"type:varchar(1000)"`
}

// TableName returns the table name
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the model to a domain task
func (m *TaskModel) ToDomain() *project.Task {
	t := &project.Task{
		ProjectID:       m.ProjectID,
		Name:            m.Name,
		Status:          project.TaskStatus(m.Status),
		AssignedTo:      m.AssignedTo,
		FootagePlanned:  m.FootagePlanned,
		FootageComplete: m.FootageComplete,
		Notes:           m.Notes,
	}
	m.PopulateOrgAggregateRoot(&t.OrgAggregateRoot)
	return t
}

// FromDomain populates the model from a domain task
func (m *TaskModel) FromDomain(t *project.Task) {
	m.FromDomainOrgAggregateRoot(t.OrgAggregateRoot)
	m.ProjectID = t.ProjectID
	m.Name = t.Name
	m.Status = t.Status.String()
	m.AssignedTo = t.AssignedTo
	m.FootagePlanned = t.FootagePlanned
	m.FootageComplete = t.FootageComplete
	m.Notes = t.Notes
}
