package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/mocks"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
	"github.com/stackboard/stackboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTicketReorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	columnA := uuid.New()
	columnB := uuid.New()
	ticket1 := uuid.New()
	ticket2 := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}
	columns := []*model.TicketColumn{
		{ID: columnA, ProjectID: projectID},
		{ID: columnB, ProjectID: projectID},
	}
	tickets := []*model.Ticket{
		{ID: ticket1, ProjectID: projectID, TicketColumnID: columnA},
		{ID: ticket2, ProjectID: projectID, TicketColumnID: columnA},
	}

	newService := func() (*service.TicketService, *mocks.MockTicketRepositoryIface, *mocks.MockTicketColumnRepositoryIface, *mocks.MockProjectRepositoryIface) {
		ticketRepo := mocks.NewMockTicketRepositoryIface(ctrl)
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		svc := service.NewTicketService(ticketRepo, columnRepo, projectRepo, employeeRepo)
		return svc, ticketRepo, columnRepo, projectRepo
	}

	t.Run("moves a ticket across columns atomically", func(t *testing.T) {
		svc, ticketRepo, columnRepo, projectRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		ticketRepo.EXPECT().
			FindByIDsInProject(gomock.Any(), projectID, []uuid.UUID{ticket1, ticket2}).
			Return(tickets, nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)
		ticketRepo.EXPECT().
			Reorder(gomock.Any(), projectID, []repository.TicketPositionUpdate{
				{TicketID: ticket1, Position: 0, TicketColumnID: columnB},
				{TicketID: ticket2, Position: 0, TicketColumnID: columnA},
			}).
			Return(nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.TicketOrderInput{
			{ID: ticket1, Position: 0, TicketColumnID: columnB},
			{ID: ticket2, Position: 0, TicketColumnID: columnA},
		})
		assert.NoError(t, err)
	})

	t.Run("same position in different columns is allowed", func(t *testing.T) {
		svc, ticketRepo, columnRepo, projectRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		ticketRepo.EXPECT().
			FindByIDsInProject(gomock.Any(), projectID, gomock.Any()).
			Return(tickets, nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)
		ticketRepo.EXPECT().Reorder(gomock.Any(), projectID, gomock.Any()).Return(nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.TicketOrderInput{
			{ID: ticket1, Position: 3, TicketColumnID: columnA},
			{ID: ticket2, Position: 3, TicketColumnID: columnB},
		})
		assert.NoError(t, err)
	})

	t.Run("reports every violation in one pass", func(t *testing.T) {
		svc, ticketRepo, columnRepo, projectRepo := newService()

		foreignTicket := uuid.New()
		foreignColumn := uuid.New()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		ticketRepo.EXPECT().
			FindByIDsInProject(gomock.Any(), projectID, gomock.Any()).
			Return(tickets, nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.TicketOrderInput{
			{ID: ticket1, Position: 0, TicketColumnID: columnA},
			{ID: ticket2, Position: 0, TicketColumnID: columnA},
			{ID: foreignTicket, Position: 1, TicketColumnID: foreignColumn},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		// foreign ticket, foreign column, duplicate slot
		assert.Len(t, verr.Violations, 3)
	})

	t.Run("duplicate ticket ids are rejected", func(t *testing.T) {
		svc, ticketRepo, columnRepo, projectRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		ticketRepo.EXPECT().
			FindByIDsInProject(gomock.Any(), projectID, []uuid.UUID{ticket1}).
			Return(tickets[:1], nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.TicketOrderInput{
			{ID: ticket1, Position: 0, TicketColumnID: columnA},
			{ID: ticket1, Position: 1, TicketColumnID: columnA},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("archived project rejects reorder", func(t *testing.T) {
		svc, _, _, projectRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(&model.Project{
			ID:             projectID,
			OrganizationID: orgID,
			Status:         model.ProjectArchived,
		}, nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.TicketOrderInput{
			{ID: ticket1, Position: 0, TicketColumnID: columnA},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("empty input is a validation error", func(t *testing.T) {
		svc, _, _, _ := newService()

		err := svc.Reorder(context.Background(), orgID, projectID, nil)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestTicketCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	columnID := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}
	column := &model.TicketColumn{ID: columnID, ProjectID: projectID}

	t.Run("defaults priority and type", func(t *testing.T) {
		ticketRepo := mocks.NewMockTicketRepositoryIface(ctrl)
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		svc := service.NewTicketService(ticketRepo, columnRepo, projectRepo, employeeRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(column, nil)
		ticketRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ticket *model.Ticket) error {
				assert.Equal(t, model.PriorityMedium, ticket.Priority)
				assert.Equal(t, model.TypeTask, ticket.Type)
				return nil
			})

		ticket, err := svc.Create(context.Background(), orgID, projectID, service.CreateTicketInput{
			TicketColumnID: columnID,
			Title:          "Fix login redirect",
		})
		assert.NoError(t, err)
		assert.Equal(t, projectID, ticket.ProjectID)
	})

	t.Run("assignee must be an active employee of the org", func(t *testing.T) {
		ticketRepo := mocks.NewMockTicketRepositoryIface(ctrl)
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		svc := service.NewTicketService(ticketRepo, columnRepo, projectRepo, employeeRepo)

		assigneeID := uuid.New()
		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(column, nil)
		employeeRepo.EXPECT().
			FindByID(gomock.Any(), assigneeID).
			Return(&model.Employee{
				ID:             assigneeID,
				OrganizationID: uuid.New(),
				Status:         model.AccountActive,
			}, nil)

		_, err := svc.Create(context.Background(), orgID, projectID, service.CreateTicketInput{
			TicketColumnID: columnID,
			Title:          "Fix login redirect",
			AssigneeID:     &assigneeID,
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("column from another project is rejected", func(t *testing.T) {
		ticketRepo := mocks.NewMockTicketRepositoryIface(ctrl)
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		svc := service.NewTicketService(ticketRepo, columnRepo, projectRepo, employeeRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(&model.TicketColumn{
			ID:        columnID,
			ProjectID: uuid.New(),
		}, nil)

		_, err := svc.Create(context.Background(), orgID, projectID, service.CreateTicketInput{
			TicketColumnID: columnID,
			Title:          "Fix login redirect",
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
