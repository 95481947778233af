// internal/repository/identity.go
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

// IdentityRepositoryIface looks up the three identity tables backing
// principal resolution. A given subject ID lives in exactly one of them.
type IdentityRepositoryIface interface {
	FindSuperAdminByID(ctx context.Context, id uuid.UUID) (*model.SuperAdmin, error)
	FindOrgAdminByID(ctx context.Context, id uuid.UUID) (*model.OrganizationAdmin, error)
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)

	FindSuperAdminByEmail(ctx context.Context, email string) (*model.SuperAdmin, error)
	FindOrgAdminByEmail(ctx context.Context, email string) (*model.OrganizationAdmin, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error)
}

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) FindSuperAdminByID(ctx context.Context, id uuid.UUID) (*model.SuperAdmin, error) {
	var admin model.SuperAdmin
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find super admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *IdentityRepository) FindOrgAdminByID(ctx context.Context, id uuid.UUID) (*model.OrganizationAdmin, error) {
	var admin model.OrganizationAdmin
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *IdentityRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *IdentityRepository) FindSuperAdminByEmail(ctx context.Context, email string) (*model.SuperAdmin, error) {
	var admin model.SuperAdmin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find super admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *IdentityRepository) FindOrgAdminByEmail(ctx context.Context, email string) (*model.OrganizationAdmin, error) {
	var admin model.OrganizationAdmin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *IdentityRepository) FindEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}
