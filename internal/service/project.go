// internal/service/project.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

type ProjectService struct {
	projectRepo repository.ProjectRepositoryIface
	orgRepo     repository.OrganizationRepositoryIface
	validate    *validator.Validate
}

func NewProjectService(
	projectRepo repository.ProjectRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
		validate:    validator.New(),
	}
}

type CreateProjectInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

func (s *ProjectService) Create(ctx context.Context, orgID uuid.UUID, input CreateProjectInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	project := &model.Project{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		Status:         model.ProjectActive,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return project, nil
}

// Get returns the project iff it belongs to the organization; a project
// under another organization is indistinguishable from a missing one.
func (s *ProjectService) Get(ctx context.Context, orgID, projectID uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != orgID {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

// List returns all organization projects for admins, membership-scoped
// projects for employees.
func (s *ProjectService) List(ctx context.Context, p *auth.Principal, orgID uuid.UUID, offset, limit int) ([]*model.Project, int64, error) {
	if p.IsEmployee() {
		return s.projectRepo.FindByMembershipPaginated(ctx, p.EmployeeID, offset, limit)
	}
	return s.projectRepo.FindByOrganizationPaginated(ctx, orgID, offset, limit)
}

type UpdateProjectInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
}

func (s *ProjectService) Update(ctx context.Context, orgID, projectID uuid.UUID, input UpdateProjectInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	project, err := s.Get(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != model.ProjectActive {
		return nil, domain.NewValidationError("project", "project is archived")
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return project, nil
}

// SetStatus archives or unarchives a project. Archival is idempotent.
func (s *ProjectService) SetStatus(ctx context.Context, orgID, projectID uuid.UUID, status model.ProjectStatus) (*model.Project, error) {
	project, err := s.Get(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project status: %w", err)
	}

	return project, nil
}

// requireActiveProject is the shared archived-project gate for the
// mutating ticket/column/member operations.
func requireActiveProject(ctx context.Context, repo repository.ProjectRepositoryIface, orgID, projectID uuid.UUID) (*model.Project, error) {
	project, err := repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != orgID {
		return nil, domain.ErrProjectNotFound
	}
	if project.Status != model.ProjectActive {
		return nil, domain.NewValidationError("project", "project is archived")
	}
	return project, nil
}
