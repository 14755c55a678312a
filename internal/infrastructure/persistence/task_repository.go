package persistence

import (
	"context"
	"errors"

	"github.com/fiberops/backend/internal/domain/project"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *project.Task) error {
	var model models.TaskModel
	model.FromDomain(task)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing task
func (r *GormTaskRepository) Update(ctx context.Context, task *project.Task) error {
	var model models.TaskModel
	model.FromDomain(task)
	return conn(ctx, r.db).Save(&model).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.TaskModel{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a task by ID within an organization
func (r *GormTaskRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*project.Task, error) {
	var model models.TaskModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject finds all tasks of a project
func (r *GormTaskRepository) FindByProject(ctx context.Context, orgID, projectID uuid.UUID) ([]*project.Task, error) {
	var taskModels []models.TaskModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND project_id = ?", orgID, projectID).
		Order("created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, err
	}
	tasks := make([]*project.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, nil
}

// Ensure GormTaskRepository implements TaskRepository
var _ project.TaskRepository = (*GormTaskRepository)(nil)
