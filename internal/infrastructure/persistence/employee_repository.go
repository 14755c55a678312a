package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create inserts a new employee profile
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *hr.EmployeeProfile) error {
	var model models.EmployeeProfileModel
	model.FromDomain(employee)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing employee profile
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *hr.EmployeeProfile) error {
	var model models.EmployeeProfileModel
	model.FromDomain(employee)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByID finds an employee by ID within an organization
func (r *GormEmployeeRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*hr.EmployeeProfile, error) {
	var model models.EmployeeProfileModel
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

// FindAll finds employees matching the filter within an organization
func (r *GormEmployeeRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter hr.EmployeeFilter) ([]*hr.EmployeeProfile, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.EmployeeProfileModel{}).
		Where("org_id = ?", orgID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Keyword != "" {
		pattern := "%" + strings.TrimSpace(filter.Keyword) + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR employee_number LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employeeModels []models.EmployeeProfileModel
	if err := query.
		Order("employee_number ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&employeeModels).Error; err != nil {
		return nil, 0, err
	}

	employees := make([]*hr.EmployeeProfile, len(employeeModels))
	for i := range employeeModels {
		employees[i] = employeeModels[i].ToDomain()
	}
	return employees, total, nil
}

// ExistsByNumber checks if an employee number is taken in the organization
func (r *GormEmployeeRepository) ExistsByNumber(ctx context.Context, orgID uuid.UUID, employeeNumber string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.EmployeeProfileModel{}).
		Where("org_id = ? AND employee_number = ?", orgID, strings.TrimSpace(employeeNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByStatus counts employees with the given status
func (r *GormEmployeeRepository) CountByStatus(ctx context.Context, orgID uuid.UUID, status hr.EmployeeStatus) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.EmployeeProfileModel{}).
		Where("org_id = ? AND status = ?", orgID, status.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
