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

// GormTimeEntryRepository implements TimeEntryRepository using GORM
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GormTimeEntryRepository
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// Create inserts a new time entry
func (r *GormTimeEntryRepository) Create(ctx context.Context, entry *hr.TimeEntry) error {
	var model models.TimeEntryModel
	model.FromDomain(entry)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing time entry
func (r *GormTimeEntryRepository) Update(ctx context.Context, entry *hr.TimeEntry) error {
	var model models.TimeEntryModel
	model.FromDomain(entry)
	return conn(ctx, r.db).Save(&model).Error
}

// Delete removes a time entry
func (r *GormTimeEntryRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.TimeEntryModel{}, "org_id = ? AND id = ?", orgID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a time entry by ID within an organization
func (r *GormTimeEntryRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*hr.TimeEntry, error) {
	var model models.TimeEntryModel
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

// FindAll finds time entries matching the filter within an organization
func (r *GormTimeEntryRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter hr.TimeEntryFilter) ([]*hr.TimeEntry, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.TimeEntryModel{}).
		Where("org_id = ?", orgID)

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("clock_in >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("clock_in <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entryModels []models.TimeEntryModel
	if err := query.
		Order("clock_in DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*hr.TimeEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, total, nil
}

// FindClosedInRange returns closed entries with clock-in inside [start, end].
// Entries without a derived total are excluded.
func (r *GormTimeEntryRepository) FindClosedInRange(ctx context.Context, orgID, employeeID uuid.UUID, start, end time.Time) ([]*hr.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ?", orgID, employeeID).
		Where("clock_in >= ? AND clock_in <= ?", start, end).
		Where("total_hours IS NOT NULL").
		Order("clock_in ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]*hr.TimeEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, nil
}

// FindOpenByEmployee returns the employee's open entry, if any
func (r *GormTimeEntryRepository) FindOpenByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*hr.TimeEntry, error) {
	var model models.TimeEntryModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ? AND clock_out IS NULL", orgID, employeeID).
		Order("clock_in DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormTimeEntryRepository implements TimeEntryRepository
var _ hr.TimeEntryRepository = (*GormTimeEntryRepository)(nil)
