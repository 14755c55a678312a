package project

import (
	"time"

	"github.com/fiberops/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectInput contains input for creating a project
type CreateProjectInput struct {
	Name          string          `json:"name" binding:"required,max=200"`
	Code          string          `json:"code" binding:"required,max=50"`
	City          string          `json:"city" binding:"max=100"`
	State         string          `json:"state" binding:"max=50"`
	Latitude      *decimal.Decimal `json:"latitude"`
	Longitude     *decimal.Decimal `json:"longitude"`
	ContractValue decimal.Decimal `json:"contract_value"`
	StartDate     *time.Time      `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	Description   string          `json:"description" binding:"max=2000"`
}

// UpdateProjectInput contains input for updating a project
type UpdateProjectInput struct {
	Name          *string          `json:"name" binding:"omitempty,max=200"`
	Status        *string          `json:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
	City          *string          `json:"city" binding:"omitempty,max=100"`
	State         *string          `json:"state" binding:"omitempty,max=50"`
	Latitude      *decimal.Decimal `json:"latitude"`
	Longitude     *decimal.Decimal `json:"longitude"`
	ContractValue *decimal.Decimal `json:"contract_value"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
}

// ListProjectsInput contains filters for listing projects
type ListProjectsInput struct {
	Status   string `form:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
	Keyword  string `form:"keyword" binding:"max=100"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ProjectResult is the project payload returned to callers
type ProjectResult struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Code          string           `json:"code"`
	Status        string           `json:"status"`
	City          string           `json:"city,omitempty"`
	State         string           `json:"state,omitempty"`
	Latitude      *decimal.Decimal `json:"latitude,omitempty"`
	Longitude     *decimal.Decimal `json:"longitude,omitempty"`
	ContractValue decimal.Decimal  `json:"contract_value"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	Description   string           `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProjectListResult is a paginated project list
type ProjectListResult struct {
	Items    []ProjectResult `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateTaskInput contains input for creating a task
type CreateTaskInput struct {
	Name           string          `json:"name" binding:"required,max=200"`
	AssignedTo     *uuid.UUID      `json:"assigned_to"`
	FootagePlanned decimal.Decimal `json:"footage_planned"`
	Notes          string          `json:"notes" binding:"max=1000"`
}

// UpdateTaskInput contains input for updating a task
type UpdateTaskInput struct {
	Name            *string          `json:"name" binding:"omitempty,max=200"`
	Status          *string          `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	AssignedTo      *uuid.UUID       `json:"assigned_to"`
	FootagePlanned  *decimal.Decimal `json:"footage_planned"`
	FootageComplete *decimal.Decimal `json:"footage_complete"`
	Notes           *string          `json:"notes" binding:"omitempty,max=1000"`
}

// TaskResult is the task payload returned to callers
type TaskResult struct {
	ID              uuid.UUID       `json:"id"`
	ProjectID       uuid.UUID       `json:"project_id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	AssignedTo      *uuid.UUID      `json:"assigned_to,omitempty"`
	FootagePlanned  decimal.Decimal `json:"footage_planned"`
	FootageComplete decimal.Decimal `json:"footage_complete"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toProjectResult(p *project.Project) ProjectResult {
	return ProjectResult{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		Status:        p.Status.String(),
		City:          p.City,
		State:         p.State,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		ContractValue: p.ContractValue,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toTaskResult(t *project.Task) TaskResult {
	return TaskResult{
		ID:              t.ID,
		ProjectID:       t.ProjectID,
		Name:            t.Name,
		Status:          t.Status.String(),
		AssignedTo:      t.AssignedTo,
		FootagePlanned:  t.FootagePlanned,
		FootageComplete: t.FootageComplete,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
