package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fiberops/backend/internal/domain/project"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create inserts a new project
func (r *GormProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	var model models.ProjectModel
	model.FromDomain(proj)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing project
func (r *GormProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	var model models.ProjectModel
	model.FromDomain(proj)
	return conn(ctx, r.db).Save(&model).Error
}

// Delete removes a project
func (r *GormProjectRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.ProjectModel{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a project by ID within an organization
func (r *GormProjectRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
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

// FindAll finds projects matching the filter within an organization
func (r *GormProjectRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter project.ProjectFilter) ([]*project.Project, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("org_id = ?", orgID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Keyword != "" {
		pattern := "%" + strings.TrimSpace(filter.Keyword) + "%"
		query = query.Where("name LIKE ? OR code LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projectModels []models.ProjectModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, total, nil
}

// ExistsByCode checks if a project code is taken in the organization
func (r *GormProjectRepository) ExistsByCode(ctx context.Context, orgID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("org_id = ? AND code = ?", orgID, strings.ToUpper(strings.TrimSpace(code))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ project.ProjectRepository = (*GormProjectRepository)(nil)
