package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fiberops/backend/internal/domain/identity"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create inserts a new organization
func (r *GormOrganizationRepository) Create(ctx context.Context, org *identity.Organization) error {
	var model models.OrganizationModel
	model.FromDomain(org)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing organization
func (r *GormOrganizationRepository) Update(ctx context.Context, org *identity.Organization) error {
	var model models.OrganizationModel
	model.FromDomain(org)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByID finds an organization by its ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Organization, error) {
	var model models.OrganizationModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds an organization by its slug
func (r *GormOrganizationRepository) FindBySlug(ctx context.Context, slug string) (*identity.Organization, error) {
	var model models.OrganizationModel
	if err := conn(ctx, r.db).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsBySlug checks if an organization with the given slug exists
func (r *GormOrganizationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.OrganizationModel{}).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormOrganizationRepository implements OrganizationRepository
var _ identity.OrganizationRepository = (*GormOrganizationRepository)(nil)
