// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// OrganizationService covers the super-admin-only organization
// lifecycle: create, update, ban/unban.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewOrganizationService(orgRepo repository.OrganizationRepositoryIface) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	org := &model.Organization{
		Name:        input.Name,
		Description: input.Description,
		Status:      model.OrgStatusActive,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	return s.orgRepo.FindAllPaginated(ctx, offset, limit)
}

type UpdateOrganizationInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
}

func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Description != nil {
		org.Description = *input.Description
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	return org, nil
}

// SetStatus flips an organization between active and banned. Every
// principal of a banned organization fails resolution on their next
// request.
func (s *OrganizationService) SetStatus(ctx context.Context, id uuid.UUID, status model.OrganizationStatus) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	org.Status = status
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization status: %w", err)
	}

	return org, nil
}
