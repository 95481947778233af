package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/mocks"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMemberAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()
	roleID := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}
	employee := &model.Employee{ID: employeeID, OrganizationID: orgID, Status: model.AccountActive}
	role := &model.Role{ID: roleID, OrganizationID: orgID}

	newService := func() (*service.MemberService, *mocks.MockProjectMemberRepositoryIface, *mocks.MockProjectRepositoryIface, *mocks.MockEmployeeRepositoryIface, *mocks.MockRoleRepositoryIface) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewMemberService(memberRepo, projectRepo, employeeRepo, roleRepo)
		return svc, memberRepo, projectRepo, employeeRepo, roleRepo
	}

	t.Run("adds an employee with a role", func(t *testing.T) {
		svc, memberRepo, projectRepo, employeeRepo, roleRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), employeeID).Return(employee, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(role, nil)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)
		memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		member, err := svc.Add(context.Background(), orgID, projectID, service.AddMemberInput{
			EmployeeID: employeeID,
			RoleID:     roleID,
		})
		assert.NoError(t, err)
		assert.Equal(t, orgID, member.OrganizationID)
	})

	t.Run("missing employee and foreign role are reported together", func(t *testing.T) {
		svc, _, projectRepo, employeeRepo, roleRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		employeeRepo.EXPECT().
			FindByID(gomock.Any(), employeeID).
			Return(nil, domain.ErrEmployeeNotFound)
		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(&model.Role{
			ID:             roleID,
			OrganizationID: uuid.New(),
		}, nil)

		_, err := svc.Add(context.Background(), orgID, projectID, service.AddMemberInput{
			EmployeeID: employeeID,
			RoleID:     roleID,
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 2)
	})

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		svc, memberRepo, projectRepo, employeeRepo, roleRepo := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), employeeID).Return(employee, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(role, nil)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(&model.ProjectMember{EmployeeID: employeeID, ProjectID: projectID}, nil)

		_, err := svc.Add(context.Background(), orgID, projectID, service.AddMemberInput{
			EmployeeID: employeeID,
			RoleID:     roleID,
		})
		assert.ErrorIs(t, err, domain.ErrMemberAlreadyExists)
	})

	t.Run("archived project rejects new members", func(t *testing.T) {
		svc, _, projectRepo, _, _ := newService()

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(&model.Project{
			ID:             projectID,
			OrganizationID: orgID,
			Status:         model.ProjectArchived,
		}, nil)

		_, err := svc.Add(context.Background(), orgID, projectID, service.AddMemberInput{
			EmployeeID: employeeID,
			RoleID:     roleID,
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestMemberRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	memberID := uuid.New()

	activeProject := &model.Project{ID: projectID, OrganizationID: orgID, Status: model.ProjectActive}

	t.Run("removes membership and unassigns tickets together", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewMemberService(memberRepo, projectRepo, employeeRepo, roleRepo)

		member := &model.ProjectMember{
			ID:             memberID,
			EmployeeID:     uuid.New(),
			ProjectID:      projectID,
			OrganizationID: orgID,
		}

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(member, nil)
		memberRepo.EXPECT().DeleteWithTicketUnassign(gomock.Any(), member).Return(nil)

		err := svc.Remove(context.Background(), orgID, projectID, memberID)
		assert.NoError(t, err)
	})

	t.Run("membership under another project reads as missing", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		projectRepo := mocks.NewMockProjectRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewMemberService(memberRepo, projectRepo, employeeRepo, roleRepo)

		projectRepo.EXPECT().FindByID(gomock.Any(), projectID).Return(activeProject, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(&model.ProjectMember{
			ID:             memberID,
			ProjectID:      uuid.New(),
			OrganizationID: orgID,
		}, nil)

		err := svc.Remove(context.Background(), orgID, projectID, memberID)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})
}
