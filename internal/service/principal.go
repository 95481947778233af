// internal/service/principal.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// PrincipalService turns an authenticated subject ID into a Principal.
// Resolution happens on every request; nothing is cached so role and
// status changes take effect immediately.
type PrincipalService struct {
	identityRepo repository.IdentityRepositoryIface
	orgRepo      repository.OrganizationRepositoryIface
}

func NewPrincipalService(
	identityRepo repository.IdentityRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
) *PrincipalService {
	return &PrincipalService{
		identityRepo: identityRepo,
		orgRepo:      orgRepo,
	}
}

// Resolve looks the subject up across the three identity tables. Any
// failure short of an infrastructure error comes back as ErrForbidden:
// which lookup failed is deliberately not leaked.
func (s *PrincipalService) Resolve(ctx context.Context, subjectID uuid.UUID) (*auth.Principal, error) {
	superAdmin, err := s.identityRepo.FindSuperAdminByID(ctx, subjectID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolving super admin: %w", err)
	}
	if superAdmin != nil {
		if superAdmin.Status != model.AccountActive {
			return nil, domain.ErrForbidden
		}
		return auth.NewSuperAdminPrincipal(superAdmin.ID), nil
	}

	orgAdmin, err := s.identityRepo.FindOrgAdminByID(ctx, subjectID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolving organization admin: %w", err)
	}
	if orgAdmin != nil {
		if orgAdmin.Status != model.AccountActive {
			return nil, domain.ErrForbidden
		}
		if err := s.checkOrganizationActive(ctx, orgAdmin.OrganizationID); err != nil {
			return nil, err
		}
		return auth.NewOrgAdminPrincipal(orgAdmin.ID, orgAdmin.OrganizationID), nil
	}

	employee, err := s.identityRepo.FindEmployeeByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("resolving employee: %w", err)
	}
	if employee.Status != model.AccountActive {
		return nil, domain.ErrForbidden
	}
	if err := s.checkOrganizationActive(ctx, employee.OrganizationID); err != nil {
		return nil, err
	}
	return auth.NewEmployeePrincipal(employee.ID, employee.OrganizationID, employee.ID), nil
}

func (s *PrincipalService) checkOrganizationActive(ctx context.Context, orgID uuid.UUID) error {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("checking organization status: %w", err)
	}
	if org.Status != model.OrgStatusActive {
		return domain.ErrForbidden
	}
	return nil
}
