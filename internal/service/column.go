// internal/service/column.go
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

type ColumnService struct {
	columnRepo  repository.TicketColumnRepositoryIface
	projectRepo repository.ProjectRepositoryIface
	validate    *validator.Validate
}

func NewColumnService(
	columnRepo repository.TicketColumnRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
) *ColumnService {
	return &ColumnService{
		columnRepo:  columnRepo,
		projectRepo: projectRepo,
		validate:    validator.New(),
	}
}

type CreateColumnInput struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
}

func (s *ColumnService) Create(ctx context.Context, orgID, projectID uuid.UUID, input CreateColumnInput) (*model.TicketColumn, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	column := &model.TicketColumn{
		ProjectID:   projectID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}

	return column, nil
}

func (s *ColumnService) List(ctx context.Context, orgID, projectID uuid.UUID) ([]*model.TicketColumn, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != orgID {
		return nil, domain.ErrProjectNotFound
	}
	return s.columnRepo.FindByProject(ctx, projectID)
}

type UpdateColumnInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (s *ColumnService) Update(ctx context.Context, orgID, projectID, columnID uuid.UUID, input UpdateColumnInput) (*model.TicketColumn, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	column, err := s.findScoped(ctx, projectID, columnID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		column.Name = *input.Name
	}
	if input.Description != nil {
		column.Description = *input.Description
	}

	if err := s.columnRepo.Update(ctx, column); err != nil {
		return nil, fmt.Errorf("updating column: %w", err)
	}

	return column, nil
}

// Delete refuses to drop a column that still holds tickets; callers
// move or delete those first.
func (s *ColumnService) Delete(ctx context.Context, orgID, projectID, columnID uuid.UUID) error {
	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return err
	}

	column, err := s.findScoped(ctx, projectID, columnID)
	if err != nil {
		return err
	}

	count, err := s.columnRepo.CountTickets(ctx, column.ID)
	if err != nil {
		return fmt.Errorf("counting tickets in column: %w", err)
	}
	if count > 0 {
		return domain.NewValidationError("column", "column still contains tickets")
	}

	return s.columnRepo.Delete(ctx, column.ID)
}

type ColumnOrderInput struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Position int       `json:"position" validate:"gte=0"`
}

// Reorder applies a full desired column ordering for the project. All
// preconditions are checked before any write and every violation is
// reported; the updates then commit as one transaction.
func (s *ColumnService) Reorder(ctx context.Context, orgID, projectID uuid.UUID, inputs []ColumnOrderInput) error {
	if len(inputs) == 0 {
		return domain.NewValidationError("ticketColumns", "no column positions supplied")
	}
	for _, in := range inputs {
		if err := s.validate.Struct(in); err != nil {
			return invalidInput(err)
		}
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return err
	}

	existing, err := s.columnRepo.FindByProject(ctx, projectID)
	if err != nil {
		return err
	}
	inProject := make(map[uuid.UUID]bool, len(existing))
	for _, c := range existing {
		inProject[c.ID] = true
	}

	verr := &domain.ValidationError{}
	seenIDs := make(map[uuid.UUID]bool, len(inputs))
	seenPositions := make(map[int]bool, len(inputs))

	for _, in := range inputs {
		if seenIDs[in.ID] {
			verr.Add("ticketColumns", fmt.Sprintf("column %s listed more than once", in.ID))
			continue
		}
		seenIDs[in.ID] = true

		if !inProject[in.ID] {
			verr.Add("ticketColumns", fmt.Sprintf("column %s does not belong to this project", in.ID))
		}
		if seenPositions[in.Position] {
			verr.Add("ticketColumns", fmt.Sprintf("duplicate position %d", in.Position))
		}
		seenPositions[in.Position] = true
	}

	if verr.HasViolations() {
		return verr
	}

	updates := make([]repository.ColumnPositionUpdate, 0, len(inputs))
	for _, in := range inputs {
		updates = append(updates, repository.ColumnPositionUpdate{
			ColumnID: in.ID,
			Position: in.Position,
		})
	}

	return s.columnRepo.Reorder(ctx, projectID, updates)
}

func (s *ColumnService) findScoped(ctx context.Context, projectID, columnID uuid.UUID) (*model.TicketColumn, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if column.ProjectID != projectID {
		return nil, domain.ErrTicketColumnNotFound
	}
	return column, nil
}
