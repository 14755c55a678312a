package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPayRunRepository implements PayRunRepository using GORM
type GormPayRunRepository struct {
	db *gorm.DB
}

// NewGormPayRunRepository creates a new GormPayRunRepository
func NewGormPayRunRepository(db *gorm.DB) *GormPayRunRepository {
	return &GormPayRunRepository{db: db}
}

// Create inserts a new pay run
func (r *GormPayRunRepository) Create(ctx context.Context, run *payroll.PayRun) error {
	var model models.PayRunModel
	model.FromDomain(run)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing pay run
func (r *GormPayRunRepository) Update(ctx context.Context, run *payroll.PayRun) error {
	var model models.PayRunModel
	model.FromDomain(run)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByID finds a pay run by ID within an organization
func (r *GormPayRunRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*payroll.PayRun, error) {
	var model models.PayRunModel
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

// FindAll finds pay runs matching the filter within an organization
func (r *GormPayRunRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter payroll.PayRunFilter) ([]*payroll.PayRun, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.PayRunModel{}).
		Where("org_id = ?", orgID)

	if filter.PayPeriodID != nil {
		query = query.Where("pay_period_id = ?", *filter.PayPeriodID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runModels []models.PayRunModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&runModels).Error; err != nil {
		return nil, 0, err
	}

	runs := make([]*payroll.PayRun, len(runModels))
	for i := range runModels {
		runs[i] = runModels[i].ToDomain()
	}
	return runs, total, nil
}

// CountByPeriod counts pay runs created for a pay period
func (r *GormPayRunRepository) CountByPeriod(ctx context.Context, orgID, payPeriodID uuid.UUID) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.PayRunModel{}).
		Where("org_id = ? AND pay_period_id = ?", orgID, payPeriodID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatuses counts pay runs in any of the given statuses created
// at or after since
func (r *GormPayRunRepository) CountByStatuses(ctx context.Context, orgID uuid.UUID, statuses []payroll.PayRunStatus, since time.Time) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = status.String()
	}
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.PayRunModel{}).
		Where("org_id = ? AND status IN ? AND created_at >= ?", orgID, values, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPayRunRepository implements PayRunRepository
var _ payroll.PayRunRepository = (*GormPayRunRepository)(nil)
