package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context, orgID uuid.UUID, filter ProjectFilter) ([]*Project, int64, error)
	ExistsByCode(ctx context.Context, orgID uuid.UUID, code string) (bool, error)
}

// ProjectFilter contains filter options for querying projects
type ProjectFilter struct {
	Status   *ProjectStatus
	Keyword  string
	Page     int
	PageSize int
}

// Offset returns the offset for pagination
func (f ProjectFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f ProjectFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*Task, error)
	FindByProject(ctx context.Context, orgID, projectID uuid.UUID) ([]*Task, error)
}
