package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPayStubRepository implements PayStubRepository using GORM
type GormPayStubRepository struct {
	db *gorm.DB
}

// NewGormPayStubRepository creates a new GormPayStubRepository
func NewGormPayStubRepository(db *gorm.DB) *GormPayStubRepository {
	return &GormPayStubRepository{db: db}
}

// Create inserts a stub together with its withholding and deduction rows
func (r *GormPayStubRepository) Create(ctx context.Context, stub *payroll.PayStub) error {
	db := conn(ctx, r.db)

	var stubModel models.PayStubModel
	stubModel.FromDomain(stub)
	if err := db.Create(&stubModel).Error; err != nil {
		return err
	}

	if len(stub.Withholdings) > 0 {
		withholdingModels := make([]*models.TaxWithholdingModel, len(stub.Withholdings))
		for i, withholding := range stub.Withholdings {
			var model models.TaxWithholdingModel
			model.FromDomain(withholding)
			withholdingModels[i] = &model
		}
		if err := db.Create(withholdingModels).Error; err != nil {
			return err
		}
	}

	if len(stub.Deductions) > 0 {
		deductionModels := make([]*models.PayDeductionModel, len(stub.Deductions))
		for i, deduction := range stub.Deductions {
			var model models.PayDeductionModel
			model.FromDomain(deduction)
			deductionModels[i] = &model
		}
		if err := db.Create(deductionModels).Error; err != nil {
			return err
		}
	}

	return nil
}

// FindByID finds a pay stub by ID within an organization
func (r *GormPayStubRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*payroll.PayStub, error) {
	var model models.PayStubModel
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

// FindByRun finds all stubs belonging to a pay run
func (r *GormPayStubRepository) FindByRun(ctx context.Context, orgID, payRunID uuid.UUID) ([]*payroll.PayStub, error) {
	var stubModels []models.PayStubModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND pay_run_id = ?", orgID, payRunID).
		Order("created_at ASC").
		Find(&stubModels).Error; err != nil {
		return nil, err
	}
	return toDomainStubs(stubModels), nil
}

// FindByEmployee finds all stubs for an employee, newest first
func (r *GormPayStubRepository) FindByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]*payroll.PayStub, error) {
	var stubModels []models.PayStubModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ?", orgID, employeeID).
		Order("created_at DESC").
		Find(&stubModels).Error; err != nil {
		return nil, err
	}
	return toDomainStubs(stubModels), nil
}

// FindAll finds stubs matching the filter within an organization
func (r *GormPayStubRepository) FindAll(ctx context.Context, orgID uuid.UUID, filter payroll.PayStubFilter) ([]*payroll.PayStub, int64, error) {
	query := conn(ctx, r.db).
		Model(&models.PayStubModel{}).
		Where("org_id = ?", orgID)

	if filter.PayRunID != nil {
		query = query.Where("pay_run_id = ?", *filter.PayRunID)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stubModels []models.PayStubModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&stubModels).Error; err != nil {
		return nil, 0, err
	}
	return toDomainStubs(stubModels), total, nil
}

// FindYearToDate returns stubs created since yearStart for the employee,
// excluding the given run
func (r *GormPayStubRepository) FindYearToDate(ctx context.Context, orgID, employeeID uuid.UUID, yearStart time.Time, excludeRunID uuid.UUID) ([]*payroll.PayStub, error) {
	var stubModels []models.PayStubModel
	if err := conn(ctx, r.db).
		Where("org_id = ? AND employee_id = ?", orgID, employeeID).
		Where("created_at >= ?", yearStart).
		Where("pay_run_id <> ?", excludeRunID).
		Order("created_at ASC").
		Find(&stubModels).Error; err != nil {
		return nil, err
	}
	return toDomainStubs(stubModels), nil
}

// SumYearToDate aggregates gross, taxes and net over stubs created at or
// after since
func (r *GormPayStubRepository) SumYearToDate(ctx context.Context, orgID uuid.UUID, since time.Time) (payroll.YTDTotals, error) {
	var row struct {
		Gross decimal.Decimal
		Taxes decimal.Decimal
		Net   decimal.Decimal
	}
	if err := conn(ctx, r.db).
		Model(&models.PayStubModel{}).
		Select("COALESCE(SUM(gross_pay), 0) AS gross, COALESCE(SUM(total_taxes), 0) AS taxes, COALESCE(SUM(net_pay), 0) AS net").
		Where("org_id = ? AND created_at >= ?", orgID, since).
		Scan(&row).Error; err != nil {
		return payroll.YTDTotals{}, err
	}
	return payroll.YTDTotals{Gross: row.Gross, Taxes: row.Taxes, Net: row.Net}, nil
}

// DeleteByRunAndEmployee removes the stub and its child rows for one
// (run, employee) pair. Missing stub is not an error so a recalculation
// and a first calculation share the same path.
func (r *GormPayStubRepository) DeleteByRunAndEmployee(ctx context.Context, orgID, payRunID, employeeID uuid.UUID) error {
	db := conn(ctx, r.db)

	var stubModel models.PayStubModel
	if err := db.
		Where("org_id = ? AND pay_run_id = ? AND employee_id = ?", orgID, payRunID, employeeID).
		First(&stubModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := db.Delete(&models.TaxWithholdingModel{}, "pay_stub_id = ?", stubModel.ID).Error; err != nil {
		return err
	}
	if err := db.Delete(&models.PayDeductionModel{}, "pay_stub_id = ?", stubModel.ID).Error; err != nil {
		return err
	}
	return db.Delete(&models.PayStubModel{}, "id = ?", stubModel.ID).Error
}

// LoadLines populates the stub's withholding and deduction rows
func (r *GormPayStubRepository) LoadLines(ctx context.Context, stub *payroll.PayStub) error {
	db := conn(ctx, r.db)

	var withholdingModels []models.TaxWithholdingModel
	if err := db.
		Where("pay_stub_id = ?", stub.ID).
		Order("created_at ASC").
		Find(&withholdingModels).Error; err != nil {
		return err
	}
	stub.Withholdings = make([]*payroll.TaxWithholding, len(withholdingModels))
	for i := range withholdingModels {
		stub.Withholdings[i] = withholdingModels[i].ToDomain()
	}

	var deductionModels []models.PayDeductionModel
	if err := db.
		Where("pay_stub_id = ?", stub.ID).
		Order("created_at ASC").
		Find(&deductionModels).Error; err != nil {
		return err
	}
	stub.Deductions = make([]*payroll.PayDeduction, len(deductionModels))
	for i := range deductionModels {
		stub.Deductions[i] = deductionModels[i].ToDomain()
	}
	return nil
}

func toDomainStubs(stubModels []models.PayStubModel) []*payroll.PayStub {
	stubs := make([]*payroll.PayStub, len(stubModels))
	for i := range stubModels {
		stubs[i] = stubModels[i].ToDomain()
	}
	return stubs
}

// Ensure GormPayStubRepository implements PayStubRepository
var _ payroll.PayStubRepository = (*GormPayStubRepository)(nil)
