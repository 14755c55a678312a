package persistence

import (
	"context"
	"errors"

	"github.com/fiberops/backend/internal/domain/identity"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrgMemberRepository implements OrgMemberRepository using GORM
type GormOrgMemberRepository struct {
	db *gorm.DB
}

// NewGormOrgMemberRepository creates a new GormOrgMemberRepository
func NewGormOrgMemberRepository(db *gorm.DB) *GormOrgMemberRepository {
	return &GormOrgMemberRepository{db: db}
}

// Create inserts a new membership
func (r *GormOrgMemberRepository) Create(ctx context.Context, member *identity.OrgMember) error {
	var model models.OrgMemberModel
	model.FromDomain(member)
	return conn(ctx, r.db).Create(&model).Error
}

// Update saves changes to an existing membership
func (r *GormOrgMemberRepository) Update(ctx context.Context, member *identity.OrgMember) error {
	var model models.OrgMemberModel
	model.FromDomain(member)
	return conn(ctx, r.db).Save(&model).Error
}

// FindByUserID finds the membership for a user
func (r *GormOrgMemberRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.OrgMember, error) {
	var model models.OrgMemberModel
	if err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrgID finds all memberships of an organization
func (r *GormOrgMemberRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID) ([]*identity.OrgMember, error) {
	var memberModels []models.OrgMemberModel
	if err := conn(ctx, r.db).
		Where("org_id = ?", orgID).
		Order("joined_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}
	members := make([]*identity.OrgMember, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToDomain()
	}
	return members, nil
}

// CountByRole counts memberships with the given role in an organization
func (r *GormOrgMemberRepository) CountByRole(ctx context.Context, orgID uuid.UUID, role identity.OrgRole) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).
		Model(&models.OrgMemberModel{}).
		Where("org_id = ? AND role = ?", orgID, role.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrgMemberRepository implements OrgMemberRepository
var _ identity.OrgMemberRepository = (*GormOrgMemberRepository)(nil)
