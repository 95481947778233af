// internal/service/access.go
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

// AccessService holds the access predicates, permission resolution and
// the authorization gate every mutating project-scoped endpoint runs
// through. Decisions are stateless: membership and roles are re-queried
// on each call.
type AccessService struct {
	memberRepo repository.ProjectMemberRepositoryIface
	roleRepo   repository.RoleRepositoryIface
}

func NewAccessService(
	memberRepo repository.ProjectMemberRepositoryIface,
	roleRepo repository.RoleRepositoryIface,
) *AccessService {
	return &AccessService{
		memberRepo: memberRepo,
		roleRepo:   roleRepo,
	}
}

// HasOrganizationAccess reports whether the principal belongs to the
// organization. Super admins are not granted organization access here;
// their operations go through dedicated endpoints.
func (s *AccessService) HasOrganizationAccess(p *auth.Principal, organizationID uuid.UUID) bool {
	switch p.Kind {
	case auth.KindOrgAdmin, auth.KindEmployee:
		return p.OrganizationID == organizationID
	}
	return false
}

func (s *AccessService) IsOrganizationAdminOf(p *auth.Principal, organizationID uuid.UUID) bool {
	return p.Kind == auth.KindOrgAdmin && p.OrganizationID == organizationID
}

// IsProjectMember reports whether the principal is an employee of the
// organization with a membership row for the project.
func (s *AccessService) IsProjectMember(ctx context.Context, p *auth.Principal, organizationID, projectID uuid.UUID) (bool, error) {
	if !p.IsEmployee() || !s.HasOrganizationAccess(p, organizationID) {
		return false, nil
	}

	member, err := s.memberRepo.FindByEmployeeAndProject(ctx, p.EmployeeID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("looking up project membership: %w", err)
	}
	return member.OrganizationID == organizationID, nil
}

// ResolvePermissions returns the permission codes granted by the
// employee's role on the project. A missing membership yields an empty
// set, not an error; gating call sites have already required
// membership, so empty simply means the role grants nothing.
func (s *AccessService) ResolvePermissions(ctx context.Context, employeeID, organizationID, projectID uuid.UUID) (model.PermissionSet, error) {
	member, err := s.memberRepo.FindByEmployeeAndProject(ctx, employeeID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return model.PermissionSet{}, nil
		}
		return nil, fmt.Errorf("looking up project membership: %w", err)
	}
	if member.OrganizationID != organizationID {
		return model.PermissionSet{}, nil
	}

	role, err := s.roleRepo.FindByID(ctx, member.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return model.PermissionSet{}, nil
		}
		return nil, fmt.Errorf("resolving role permissions: %w", err)
	}

	return role.PermissionCodes(), nil
}

// guardVerdict is the outcome of one guard in the authorization chain.
type guardVerdict int

const (
	verdictContinue guardVerdict = iota
	verdictAllow
	verdictDeny
)

type guardFunc func(ctx context.Context) (guardVerdict, error)

// Authorize is the single gate in front of every permission-gated
// endpoint. Guards run in order and the chain short-circuits on the
// first Allow or Deny; falling off the end denies.
//
// Semantics: with allowOrgAdminBypass set, an admin of the target
// organization is allowed outright. Otherwise the principal must be an
// employee whose membership role grants at least one of the required
// codes (OR semantics over the required set).
func (s *AccessService) Authorize(
	ctx context.Context,
	p *auth.Principal,
	organizationID, projectID uuid.UUID,
	required []model.PermissionCode,
	allowOrgAdminBypass bool,
) error {
	guards := []guardFunc{
		func(context.Context) (guardVerdict, error) {
			if allowOrgAdminBypass && s.IsOrganizationAdminOf(p, organizationID) {
				return verdictAllow, nil
			}
			return verdictContinue, nil
		},
		func(ctx context.Context) (guardVerdict, error) {
			if !p.IsEmployee() {
				return verdictDeny, nil
			}
			isMember, err := s.IsProjectMember(ctx, p, organizationID, projectID)
			if err != nil {
				return verdictDeny, err
			}
			if !isMember {
				return verdictDeny, nil
			}

			granted, err := s.ResolvePermissions(ctx, p.EmployeeID, organizationID, projectID)
			if err != nil {
				return verdictDeny, err
			}
			if granted.IntersectsAny(required) {
				return verdictAllow, nil
			}
			return verdictDeny, nil
		},
	}

	for _, guard := range guards {
		verdict, err := guard(ctx)
		if err != nil {
			return err
		}
		switch verdict {
		case verdictAllow:
			return nil
		case verdictDeny:
			return domain.ErrForbidden
		}
	}

	return domain.ErrForbidden
}

// CanViewProject gates read access: organization admins see every
// project in their organization, employees only those they are members
// of.
func (s *AccessService) CanViewProject(ctx context.Context, p *auth.Principal, organizationID, projectID uuid.UUID) (bool, error) {
	if s.IsOrganizationAdminOf(p, organizationID) {
		return true, nil
	}
	return s.IsProjectMember(ctx, p, organizationID, projectID)
}
