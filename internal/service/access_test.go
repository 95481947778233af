package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/mocks"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()
	roleID := uuid.New()

	member := &model.ProjectMember{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		ProjectID:      projectID,
		RoleID:         roleID,
		OrganizationID: orgID,
	}

	roleWithTicketCreate := &model.Role{
		ID:             roleID,
		OrganizationID: orgID,
		Name:           "Contributor",
		Permissions: []model.Permission{
			{Code: model.PermTicketCreate, Group: model.GroupTicket},
		},
	}

	t.Run("org admin bypass allows without membership", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		p := auth.NewOrgAdminPrincipal(uuid.New(), orgID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, true)
		assert.NoError(t, err)
	})

	t.Run("org admin of another organization is denied", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		p := auth.NewOrgAdminPrincipal(uuid.New(), uuid.New())
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("org admin is denied when bypass is disabled", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		p := auth.NewOrgAdminPrincipal(uuid.New(), orgID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, false)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("employee with granted permission is allowed", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(member, nil).
			Times(2)
		roleRepo.EXPECT().
			FindByID(gomock.Any(), roleID).
			Return(roleWithTicketCreate, nil)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, true)
		assert.NoError(t, err)
	})

	t.Run("or semantics grant on any matching code", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(member, nil).
			Times(2)
		roleRepo.EXPECT().
			FindByID(gomock.Any(), roleID).
			Return(roleWithTicketCreate, nil)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketDelete, model.PermTicketCreate}, true)
		assert.NoError(t, err)
	})

	t.Run("employee without the required permission is denied", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(member, nil).
			Times(2)
		roleRepo.EXPECT().
			FindByID(gomock.Any(), roleID).
			Return(roleWithTicketCreate, nil)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermProjectArchive}, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("employee without membership is denied", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("super admin is denied on project endpoints", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		p := auth.NewSuperAdminPrincipal(uuid.New())
		err := svc.Authorize(context.Background(), p, orgID, projectID,
			[]model.PermissionCode{model.PermTicketCreate}, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCanViewProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()

	t.Run("org admin can view any project in the org", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		p := auth.NewOrgAdminPrincipal(uuid.New(), orgID)
		canView, err := svc.CanViewProject(context.Background(), p, orgID, projectID)
		assert.NoError(t, err)
		assert.True(t, canView)
	})

	t.Run("employee can view only member projects", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		canView, err := svc.CanViewProject(context.Background(), p, orgID, projectID)
		assert.NoError(t, err)
		assert.False(t, canView)
	})

	t.Run("membership from another organization does not count", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(&model.ProjectMember{
				EmployeeID:     employeeID,
				ProjectID:      projectID,
				OrganizationID: uuid.New(),
			}, nil)

		p := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
		canView, err := svc.CanViewProject(context.Background(), p, orgID, projectID)
		assert.NoError(t, err)
		assert.False(t, canView)
	})
}

func TestResolvePermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()

	t.Run("missing membership yields empty set", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)

		granted, err := svc.ResolvePermissions(context.Background(), employeeID, orgID, projectID)
		assert.NoError(t, err)
		assert.Empty(t, granted)
	})

	t.Run("role codes come back as a set", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewAccessService(memberRepo, roleRepo)

		roleID := uuid.New()
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(&model.ProjectMember{
				EmployeeID:     employeeID,
				ProjectID:      projectID,
				RoleID:         roleID,
				OrganizationID: orgID,
			}, nil)
		roleRepo.EXPECT().
			FindByID(gomock.Any(), roleID).
			Return(&model.Role{
				ID:             roleID,
				OrganizationID: orgID,
				Permissions: []model.Permission{
					{Code: model.PermTicketCreate},
					{Code: model.PermTicketUpdate},
				},
			}, nil)

		granted, err := svc.ResolvePermissions(context.Background(), employeeID, orgID, projectID)
		assert.NoError(t, err)
		assert.True(t, granted.Contains(model.PermTicketCreate))
		assert.True(t, granted.Contains(model.PermTicketUpdate))
		assert.False(t, granted.Contains(model.PermTicketDelete))
	})
}
