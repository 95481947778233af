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

func TestRoleCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("creates a role with catalog codes", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		codes := []model.PermissionCode{model.PermTicketCreate, model.PermTicketUpdate}
		roleRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), codes).
			Return(nil)

		role, err := svc.Create(context.Background(), orgID, service.CreateRoleInput{
			Name:        "Contributor",
			Permissions: codes,
		})
		assert.NoError(t, err)
		assert.Equal(t, orgID, role.OrganizationID)
	})

	t.Run("unknown permission code never reaches the repository", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		_, err := svc.Create(context.Background(), orgID, service.CreateRoleInput{
			Name:        "Contributor",
			Permissions: []model.PermissionCode{"ticket:launch"},
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestRoleUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	roleID := uuid.New()

	t.Run("absent permissions keep the current association", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(&model.Role{
			ID:             roleID,
			OrganizationID: orgID,
			Name:           "Contributor",
			Permissions: []model.Permission{
				{Code: model.PermTicketCreate},
			},
		}, nil)
		roleRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), []model.PermissionCode{model.PermTicketCreate}).
			Return(nil)

		name := "Senior Contributor"
		role, err := svc.Update(context.Background(), orgID, roleID, service.UpdateRoleInput{
			Name: &name,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Senior Contributor", role.Name)
	})

	t.Run("role in another organization reads as missing", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(&model.Role{
			ID:             roleID,
			OrganizationID: uuid.New(),
		}, nil)

		_, err := svc.Update(context.Background(), orgID, roleID, service.UpdateRoleInput{})
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})
}

func TestRoleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	roleID := uuid.New()
	role := &model.Role{ID: roleID, OrganizationID: orgID}

	t.Run("role still assigned to members cannot be deleted", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(role, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), roleID).Return(int64(2), nil)

		err := svc.Delete(context.Background(), orgID, roleID)
		assert.ErrorIs(t, err, domain.ErrRoleInUse)
	})

	t.Run("unreferenced role is deleted", func(t *testing.T) {
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		svc := service.NewRoleService(roleRepo, memberRepo)

		roleRepo.EXPECT().FindByID(gomock.Any(), roleID).Return(role, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), roleID).Return(int64(0), nil)
		roleRepo.EXPECT().Delete(gomock.Any(), roleID).Return(nil)

		err := svc.Delete(context.Background(), orgID, roleID)
		assert.NoError(t, err)
	})
}
