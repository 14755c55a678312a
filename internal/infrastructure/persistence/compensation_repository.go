package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompensationRepository implements CompensationRepository using GORM
type GormCompensationRepository struct {
	db *gorm.DB
}

// NewGormCompensationRepository creates a new GormCompensationRepository
func NewGormCompensationRepository(db *gorm.DB) *GormCompensationRepository {
	return &GormCompensationRepository{db: db}
}

// Create inserts a new compensation record
func (r *GormCompensationRepository) Create(ctx context.Context, record *hr.CompensationRecord) error {
	var model models.CompensationRecordModel
	model.FromDomain(record)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing compensation record
func (r *GormCompensationRepository) Update(ctx context.Context, record *hr.CompensationRecord) error {
	var model models.CompensationRecordModel
	model.FromDomain(record)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByID finds a compensation record by ID within an organization
func (r *GormCompensationRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*hr.CompensationRecord, error) {
	var model models.CompensationRecordModel
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

// FindByEmployee finds all compensation records for an employee, newest first
func (r *GormCompensationRepository) FindByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]*hr.CompensationRecord, error) {
	var recordModels []models.CompensationRecordModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ?", orgID, employeeID).
		Order("effective_date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*hr.CompensationRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}
	return records, nil
}

// FindCurrentByEmployee finds the employee's current compensation record
func (r *GormCompensationRepository) FindCurrentByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*hr.CompensationRecord, error) {
	var model models.CompensationRecordModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ? AND is_current = ?", orgID, employeeID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllCurrent returns the current record for every employee in the org
func (r *GormCompensationRepository) FindAllCurrent(ctx context.Context, orgID uuid.UUID) ([]*hr.CompensationRecord, error) {
	var recordModels []models.CompensationRecordModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND is_current = ?", orgID, true).
		Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*hr.CompensationRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}
	return records, nil
}

// DemoteCurrent clears the current flag on the employee's current record.
// Missing current record is not an error so a first-time compensation
// setup goes through the same path.
func (r *GormCompensationRepository) DemoteCurrent(ctx context.Context, orgID, employeeID uuid.UUID, endDate time.Time) error {
	return conn(ctx, r.db).
		Model(&models.CompensationRecordModel{}).
		Where("org_id = ? AND employee_id = ? AND is_current = ?", orgID, employeeID, true).
		Updates(map[string]interface{}{
			"is_current": false,
			"end_date":   endDate,
		}).Error
}

// Ensure GormCompensationRepository implements CompensationRepository
var _ hr.CompensationRepository = (*GormCompensationRepository)(nil)
