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

func TestColumnReorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	columnA := uuid.New()
	columnB := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}
	columns := []*model.TicketColumn{
		{ID: columnA, ProjectID: projectID, Position: 0},
		{ID: columnB, ProjectID: projectID, Position: 1},
	}

	t.Run("swaps column positions in one transaction", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)
		columnRepo.EXPECT().
			Reorder(gomock.Any(), projectID, []repository.ColumnPositionUpdate{
				{ColumnID: columnA, Position: 1},
				{ColumnID: columnB, Position: 0},
			}).
			Return(nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.ColumnOrderInput{
			{ID: columnA, Position: 1},
			{ID: columnB, Position: 0},
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate positions and foreign columns are all reported", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		foreign := uuid.New()
		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByProject(gomock.Any(), projectID).Return(columns, nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.ColumnOrderInput{
			{ID: columnA, Position: 0},
			{ID: columnB, Position: 0},
			{ID: foreign, Position: 1},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		// duplicate position plus foreign column
		assert.Len(t, verr.Violations, 2)
	})

	t.Run("archived project rejects reorder", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(&model.Project{
			ID:             projectID,
			OrganizationID: orgID,
			Status:         model.ProjectArchived,
		}, nil)

		err := svc.Reorder(context.Background(), orgID, projectID, []service.ColumnOrderInput{
			{ID: columnA, Position: 0},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestColumnDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	columnID := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}
	column := &model.TicketColumn{ID: columnID, ProjectID: projectID}

	t.Run("refuses to delete a non-empty column", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(column, nil)
		columnRepo.EXPECT().CountTickets(gomock.Any(), columnID).Return(int64(4), nil)

		err := svc.Delete(context.Background(), orgID, projectID, columnID)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("deletes an empty column", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(column, nil)
		columnRepo.EXPECT().CountTickets(gomock.Any(), columnID).Return(int64(0), nil)
		columnRepo.EXPECT().Delete(gomock.Any(), columnID).Return(nil)

		err := svc.Delete(context.Background(), orgID, projectID, columnID)
		assert.NoError(t, err)
	})

	t.Run("column in another project reads as missing", func(t *testing.T) {
		columnRepo := mocks.NewMockTicketColumnRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		svc := service.NewColumnService(columnRepo, projectRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		columnRepo.EXPECT().FindByID(gomock.Any(), columnID).Return(&model.TicketColumn{
			ID:        columnID,
			ProjectID: uuid.New(),
		}, nil)

		err := svc.Delete(context.Background(), orgID, projectID, columnID)
		assert.ErrorIs(t, err, domain.ErrTicketColumnNotFound)
	})
}
