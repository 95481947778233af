// internal/service/member.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// MemberService manages the join entity granting an employee a role
// within one project.
type MemberService struct {
	memberRepo   repository.ProjectMemberRepositoryIface
	projectRepo  repository.ProjectRepositoryIface
	employeeRepo repository.EmployeeRepositoryIface
	roleRepo     repository.RoleRepositoryIface
	validate     *validator.Validate
}

func NewMemberService(
	memberRepo repository.ProjectMemberRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	employeeRepo repository.EmployeeRepositoryIface,
	roleRepo repository.RoleRepositoryIface,
) *MemberService {
	return &MemberService{
		memberRepo:   memberRepo,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		validate:     validator.New(),
	}
}

type AddMemberInput struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	RoleID     uuid.UUID `json:"role_id" validate:"required"`
}

func (s *MemberService) Add(ctx context.Context, orgID, projectID uuid.UUID, input AddMemberInput) (*model.ProjectMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	verr := &domain.ValidationError{}

	employee, err := s.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
		verr.Add("employee_id", "employee not found")
	} else if employee.OrganizationID != orgID {
		verr.Add("employee_id", "employee belongs to another organization")
	}

	role, err := s.roleRepo.FindByID(ctx, input.RoleID)
	if err != nil {
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return nil, err
		}
		verr.Add("role_id", "role not found")
	} else if role.OrganizationID != orgID {
		verr.Add("role_id", "role belongs to another organization")
	}

	if verr.HasViolations() {
		return nil, verr
	}

	if _, err := s.memberRepo.FindByEmployeeAndProject(ctx, input.EmployeeID, projectID); err == nil {
		return nil, domain.ErrMemberAlreadyExists
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}

	member := &model.ProjectMember{
		EmployeeID:     input.EmployeeID,
		ProjectID:      projectID,
		RoleID:         input.RoleID,
		OrganizationID: orgID,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("creating project member: %w", err)
	}

	return member, nil
}

func (s *MemberService) List(ctx context.Context, orgID, projectID uuid.UUID, offset, limit int) ([]*model.ProjectMember, int64, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	if project.OrganizationID != orgID {
		return nil, 0, domain.ErrProjectNotFound
	}
	return s.memberRepo.FindByProjectPaginated(ctx, projectID, offset, limit)
}

type UpdateMemberInput struct {
	RoleID uuid.UUID `json:"role_id" validate:"required"`
}

// UpdateRole swaps the member's role; the new role must belong to the
// same organization.
func (s *MemberService) UpdateRole(ctx context.Context, orgID, projectID, memberID uuid.UUID, input UpdateMemberInput) (*model.ProjectMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	member, err := s.findScoped(ctx, orgID, projectID, memberID)
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if role.OrganizationID != orgID {
		return nil, domain.NewValidationError("role_id", "role belongs to another organization")
	}

	member.RoleID = role.ID
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("updating project member: %w", err)
	}

	return member, nil
}

// Remove deletes the membership and unassigns the employee's open
// tickets in the project as one atomic operation.
func (s *MemberService) Remove(ctx context.Context, orgID, projectID, memberID uuid.UUID) error {
	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return err
	}

	member, err := s.findScoped(ctx, orgID, projectID, memberID)
	if err != nil {
		return err
	}

	return s.memberRepo.DeleteWithTicketUnassign(ctx, member)
}

func (s *MemberService) findScoped(ctx context.Context, orgID, projectID, memberID uuid.UUID) (*model.ProjectMember, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.ProjectID != projectID || member.OrganizationID != orgID {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}
