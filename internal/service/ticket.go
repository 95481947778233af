// internal/service/ticket.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

type TicketService struct {
	ticketRepo   repository.TicketRepositoryIface
	columnRepo   repository.TicketColumnRepositoryIface
	projectRepo  repository.ProjectRepositoryIface
	employeeRepo repository.EmployeeRepositoryIface
	validate     *validator.Validate
}

func NewTicketService(
	ticketRepo repository.TicketRepositoryIface,
	columnRepo repository.TicketColumnRepositoryIface,
	projectRepo repository.ProjectRepositoryIface,
	employeeRepo repository.EmployeeRepositoryIface,
) *TicketService {
	return &TicketService{
		ticketRepo:   ticketRepo,
		columnRepo:   columnRepo,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		validate:     validator.New(),
	}
}

type CreateTicketInput struct {
	TicketColumnID uuid.UUID            `json:"ticket_column_id" validate:"required"`
	Title          string               `json:"title" validate:"required,min=1"`
	Description    string               `json:"description"`
	Priority       model.TicketPriority `json:"priority"`
	Type           model.TicketType     `json:"type"`
	AssigneeID     *uuid.UUID           `json:"assignee_id"`
	DueDate        *time.Time           `json:"due_date"`
}

func (s *TicketService) Create(ctx context.Context, orgID, projectID uuid.UUID, input CreateTicketInput) (*model.Ticket, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	column, err := s.columnRepo.FindByID(ctx, input.TicketColumnID)
	if err != nil {
		return nil, err
	}
	if column.ProjectID != projectID {
		return nil, domain.NewValidationError("ticket_column_id", "column does not belong to this project")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	} else if !model.ValidTicketPriority(priority) {
		return nil, domain.NewValidationError("priority", "unknown ticket priority")
	}

	ticketType := input.Type
	if ticketType == "" {
		ticketType = model.TypeTask
	} else if !model.ValidTicketType(ticketType) {
		return nil, domain.NewValidationError("type", "unknown ticket type")
	}

	if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, orgID, *input.AssigneeID); err != nil {
			return nil, err
		}
	}

	ticket := &model.Ticket{
		ProjectID:      projectID,
		TicketColumnID: column.ID,
		Title:          input.Title,
		Description:    input.Description,
		Priority:       priority,
		Type:           ticketType,
		AssigneeID:     input.AssigneeID,
		DueDate:        input.DueDate,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, orgID, projectID, ticketID uuid.UUID) (*model.Ticket, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != orgID {
		return nil, domain.ErrProjectNotFound
	}
	return s.findScoped(ctx, projectID, ticketID)
}

func (s *TicketService) List(ctx context.Context, orgID, projectID uuid.UUID, offset, limit int) ([]*model.Ticket, int64, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	if project.OrganizationID != orgID {
		return nil, 0, domain.ErrProjectNotFound
	}
	return s.ticketRepo.FindByProjectPaginated(ctx, projectID, offset, limit)
}

type UpdateTicketInput struct {
	Title         *string               `json:"title" validate:"omitempty,min=1"`
	Description   *string               `json:"description"`
	Priority      *model.TicketPriority `json:"priority"`
	Type          *model.TicketType     `json:"type"`
	AssigneeID    *uuid.UUID            `json:"assignee_id"`
	ClearAssignee bool                  `json:"clear_assignee"`
	DueDate       *time.Time            `json:"due_date"`
}

func (s *TicketService) Update(ctx context.Context, orgID, projectID, ticketID uuid.UUID, input UpdateTicketInput) (*model.Ticket, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return nil, err
	}

	ticket, err := s.findScoped(ctx, projectID, ticketID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		ticket.Title = *input.Title
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Priority != nil {
		if !model.ValidTicketPriority(*input.Priority) {
			return nil, domain.NewValidationError("priority", "unknown ticket priority")
		}
		ticket.Priority = *input.Priority
	}
	if input.Type != nil {
		if !model.ValidTicketType(*input.Type) {
			return nil, domain.NewValidationError("type", "unknown ticket type")
		}
		ticket.Type = *input.Type
	}
	if input.ClearAssignee {
		ticket.AssigneeID = nil
	} else if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, orgID, *input.AssigneeID); err != nil {
			return nil, err
		}
		ticket.AssigneeID = input.AssigneeID
	}
	if input.DueDate != nil {
		ticket.DueDate = input.DueDate
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("updating ticket: %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, orgID, projectID, ticketID uuid.UUID) error {
	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return err
	}

	ticket, err := s.findScoped(ctx, projectID, ticketID)
	if err != nil {
		return err
	}

	return s.ticketRepo.Delete(ctx, ticket.ID)
}

type TicketOrderInput struct {
	ID             uuid.UUID `json:"id" validate:"required"`
	Position       int       `json:"position" validate:"gte=0"`
	TicketColumnID uuid.UUID `json:"ticketColumnId" validate:"required"`
}

// Reorder applies a full desired ticket layout for the affected scope:
// each entry names a ticket's final column and position. All
// preconditions are checked up front and every violation is reported
// together; the updates then commit as one transaction, so resubmitting
// the same layout is a no-op.
func (s *TicketService) Reorder(ctx context.Context, orgID, projectID uuid.UUID, inputs []TicketOrderInput) error {
	if len(inputs) == 0 {
		return domain.NewValidationError("tickets", "no ticket positions supplied")
	}
	for _, in := range inputs {
		if err := s.validate.Struct(in); err != nil {
			return invalidInput(err)
		}
	}

	if _, err := requireActiveProject(ctx, s.projectRepo, orgID, projectID); err != nil {
		return err
	}

	verr := &domain.ValidationError{}

	ids := make([]uuid.UUID, 0, len(inputs))
	seenIDs := make(map[uuid.UUID]bool, len(inputs))
	for _, in := range inputs {
		if seenIDs[in.ID] {
			verr.Add("tickets", fmt.Sprintf("ticket %s listed more than once", in.ID))
			continue
		}
		seenIDs[in.ID] = true
		ids = append(ids, in.ID)
	}

	// Every named ticket must belong to the project.
	found, err := s.ticketRepo.FindByIDsInProject(ctx, projectID, ids)
	if err != nil {
		return err
	}
	inProject := make(map[uuid.UUID]bool, len(found))
	for _, t := range found {
		inProject[t.ID] = true
	}
	for _, id := range ids {
		if !inProject[id] {
			verr.Add("tickets", fmt.Sprintf("ticket %s does not belong to this project", id))
		}
	}

	// Every referenced column must belong to the project.
	columns, err := s.columnRepo.FindByProject(ctx, projectID)
	if err != nil {
		return err
	}
	validColumns := make(map[uuid.UUID]bool, len(columns))
	for _, c := range columns {
		validColumns[c.ID] = true
	}

	// Positions must be pairwise distinct within each target column.
	type slot struct {
		column   uuid.UUID
		position int
	}
	seenSlots := make(map[slot]bool, len(inputs))
	for _, in := range inputs {
		if !validColumns[in.TicketColumnID] {
			verr.Add("tickets", fmt.Sprintf("column %s does not belong to this project", in.TicketColumnID))
			continue
		}
		key := slot{column: in.TicketColumnID, position: in.Position}
		if seenSlots[key] {
			verr.Add("tickets", fmt.Sprintf("duplicate position %d in column %s", in.Position, in.TicketColumnID))
		}
		seenSlots[key] = true
	}

	if verr.HasViolations() {
		return verr
	}

	updates := make([]repository.TicketPositionUpdate, 0, len(inputs))
	for _, in := range inputs {
		updates = append(updates, repository.TicketPositionUpdate{
			TicketID:       in.ID,
			Position:       in.Position,
			TicketColumnID: in.TicketColumnID,
		})
	}

	return s.ticketRepo.Reorder(ctx, projectID, updates)
}

func (s *TicketService) checkAssignee(ctx context.Context, orgID, assigneeID uuid.UUID) error {
	assignee, err := s.employeeRepo.FindByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return domain.NewValidationError("assignee_id", "assignee not found")
		}
		return err
	}
	if assignee.OrganizationID != orgID || assignee.Status != model.AccountActive {
		return domain.NewValidationError("assignee_id", "assignee is not an active employee of this organization")
	}
	return nil
}

func (s *TicketService) findScoped(ctx context.Context, projectID, ticketID uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.ProjectID != projectID {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}
