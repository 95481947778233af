// internal/service/role.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// RoleService covers the organization-admin-only role surface. Only the
// Role <-> Permission association is tenant-mutable; the catalog itself
// is fixed.
type RoleService struct {
	roleRepo   repository.RoleRepositoryIface
	memberRepo repository.ProjectMemberRepositoryIface
	validate   *validator.Validate
}

func NewRoleService(
	roleRepo repository.RoleRepositoryIface,
	memberRepo repository.ProjectMemberRepositoryIface,
) *RoleService {
	return &RoleService{
		roleRepo:   roleRepo,
		memberRepo: memberRepo,
		validate:   validator.New(),
	}
}

type CreateRoleInput struct {
	Name        string                 `json:"name" validate:"required,min=2"`
	Description string                 `json:"description"`
	Permissions []model.PermissionCode `json:"permissions" validate:"required"`
}

func (s *RoleService) Create(ctx context.Context, orgID uuid.UUID, input CreateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}
	if err := validateCodes(input.Permissions); err != nil {
		return nil, err
	}

	role := &model.Role{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
	}

	if err := s.roleRepo.Create(ctx, role, input.Permissions); err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	return role, nil
}

func (s *RoleService) Get(ctx context.Context, orgID, roleID uuid.UUID) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.OrganizationID != orgID {
		return nil, domain.ErrRoleNotFound
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Role, int64, error) {
	return s.roleRepo.FindByOrganizationPaginated(ctx, orgID, offset, limit)
}

type UpdateRoleInput struct {
	Name        *string                `json:"name" validate:"omitempty,min=2"`
	Description *string                `json:"description"`
	Permissions []model.PermissionCode `json:"permissions"`
}

func (s *RoleService) Update(ctx context.Context, orgID, roleID uuid.UUID, input UpdateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	role, err := s.Get(ctx, orgID, roleID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = *input.Description
	}

	codes := input.Permissions
	if codes == nil {
		// Absent permissions field keeps the current association.
		current := role.PermissionCodes()
		codes = make([]model.PermissionCode, 0, len(current))
		for c := range current {
			codes = append(codes, c)
		}
	} else if err := validateCodes(codes); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Update(ctx, role, codes); err != nil {
		return nil, fmt.Errorf("updating role: %w", err)
	}

	return role, nil
}

// Delete refuses to remove a role while any project member still
// references it. The check lives here, not only in the database.
func (s *RoleService) Delete(ctx context.Context, orgID, roleID uuid.UUID) error {
	role, err := s.Get(ctx, orgID, roleID)
	if err != nil {
		return err
	}

	count, err := s.memberRepo.CountByRole(ctx, role.ID)
	if err != nil {
		return fmt.Errorf("counting role references: %w", err)
	}
	if count > 0 {
		return domain.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, role.ID)
}

// ListPermissions returns the fixed catalog for role-builder UIs.
func (s *RoleService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	return s.roleRepo.FindAllPermissions(ctx)
}

func validateCodes(codes []model.PermissionCode) error {
	verr := &domain.ValidationError{}
	for _, c := range codes {
		if !model.ValidPermissionCode(c) {
			verr.Add("permissions", fmt.Sprintf("unknown permission code %q", c))
		}
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}
