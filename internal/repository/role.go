// internal/repository/role.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"gorm.io/gorm"
)

type RoleRepositoryIface interface {
	Create(ctx context.Context, role *model.Role, codes []model.PermissionCode) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Role, int64, error)
	Update(ctx context.Context, role *model.Role, codes []model.PermissionCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindPermissionsByCodes(ctx context.Context, codes []model.PermissionCode) ([]model.Permission, error)
	FindAllPermissions(ctx context.Context) ([]model.Permission, error)
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create inserts the role and associates the catalog rows for the given
// codes in one transaction.
func (r *RoleRepository) Create(ctx context.Context, role *model.Role, codes []model.PermissionCode) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Create(role).Error; err != nil {
			return fmt.Errorf("creating role: %w", err)
		}

		perms, err := findPermissions(tx, codes)
		if err != nil {
			return err
		}

		if err := tx.Model(role).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("associating permissions: %w", err)
		}
		role.Permissions = perms
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	result := r.db.WithContext(ctx).Preload("Permissions").First(&role, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", result.Error)
	}
	return &role, nil
}

func (r *RoleRepository) FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Role, int64, error) {
	var roles []*model.Role
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Role{}).Where("organization_id = ?", orgID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count roles: %w", err)
	}

	result := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("organization_id = ?", orgID).
		Order("created_at").
		Offset(offset).Limit(limit).
		Find(&roles)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated roles: %w", result.Error)
	}

	return roles, count, nil
}

// Update saves the role fields and replaces its permission association
// in one transaction.
func (r *RoleRepository) Update(ctx context.Context, role *model.Role, codes []model.PermissionCode) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Save(role).Error; err != nil {
			return fmt.Errorf("saving role: %w", err)
		}

		perms, err := findPermissions(tx, codes)
		if err != nil {
			return err
		}

		if err := tx.Model(role).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("replacing permissions: %w", err)
		}
		role.Permissions = perms
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		role := model.Role{ID: id}
		if err := tx.Model(&role).Association("Permissions").Clear(); err != nil {
			return fmt.Errorf("clearing permissions: %w", err)
		}
		if err := tx.Delete(&model.Role{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting role: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindPermissionsByCodes(ctx context.Context, codes []model.PermissionCode) ([]model.Permission, error) {
	return findPermissions(r.db.WithContext(ctx), codes)
}

func (r *RoleRepository) FindAllPermissions(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	result := r.db.WithContext(ctx).Order("permission_group, code").Find(&perms)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find permissions: %w", result.Error)
	}
	return perms, nil
}

func findPermissions(db *gorm.DB, codes []model.PermissionCode) ([]model.Permission, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var perms []model.Permission
	if err := db.Where("code IN ?", codes).Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("finding permissions by code: %w", err)
	}
	if len(perms) != len(codes) {
		return nil, domain.ErrUnknownPermission
	}
	return perms, nil
}
