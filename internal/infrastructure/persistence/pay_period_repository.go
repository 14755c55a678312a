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

// GormPayPeriodRepository implements PayPeriodRepository using GORM
type GormPayPeriodRepository struct {
	db *gorm.DB
}

// NewGormPayPeriodRepository creates a new GormPayPeriodRepository
func NewGormPayPeriodRepository(db *gorm.DB) *GormPayPeriodRepository {
	return &GormPayPeriodRepository{db: db}
}

// Create inserts a new pay period
func (r *GormPayPeriodRepository) Create(ctx context.Context, period *payroll.PayPeriod) error {
	var model models.PayPeriodModel
	model.FromDomain(period)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing pay period
func (r *GormPayPeriodRepository) Update(ctx context.Context, period *payroll.PayPeriod) error {
	var model models.PayPeriodModel
	model.FromDomain(period)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByID finds a pay period by ID within an organization
func (r *GormPayPeriodRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*payroll.PayPeriod, error) {
	var model models.PayPeriodModel
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

// FindAll finds pay periods matching the filter within an organization
func (r *GormPayPeriodRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter payroll.PayPeriodFilter) ([]*payroll.PayPeriod, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.PayPeriodModel{}).
		Where("org_id = ?", orgID)

	if filter.PeriodType != nil {
		query = query.Where("period_type = ?", filter.PeriodType.String())
	}
	if filter.IsClosed != nil {
		query = query.Where("is_closed = ?", *filter.IsClosed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var periodModels []models.PayPeriodModel
	if err := query.
		Order("start_date DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&periodModels).Error; err != nil {
		return nil, 0, err
	}

	periods := make([]*payroll.PayPeriod, len(periodModels))
	for i := range periodModels {
		periods[i] = periodModels[i].ToDomain()
	}
	return periods, total, nil
}

// FindCurrent returns the open period containing the given date, if any
func (r *GormPayPeriodRepository) FindCurrent(ctx context.Context, orgID uuid.UUID, at time.Time) (*payroll.PayPeriod, error) {
	var model models.PayPeriodModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND is_closed = ?", orgID, false).
		Where("start_date <= ? AND end_date >= ?", at, at).
		Order("start_date DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormPayPeriodRepository implements PayPeriodRepository
var _ payroll.PayPeriodRepository = (*GormPayPeriodRepository)(nil)
