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

func TestResolvePrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	activeOrg := &model.Organization{ID: orgID, Name: "Acme", Status: model.OrgStatusActive}
	bannedOrg := &model.Organization{ID: orgID, Name: "Acme", Status: model.OrgStatusBanned}

	t.Run("resolves a super admin", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(&model.SuperAdmin{ID: id, Status: model.AccountActive}, nil)

		p, err := svc.Resolve(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, auth.KindSuperAdmin, p.Kind)
		assert.Equal(t, id, p.ID)
	})

	t.Run("resolves an organization admin of an active org", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByID(gomock.Any(), id).
			Return(&model.OrganizationAdmin{ID: id, OrganizationID: orgID, Status: model.AccountActive}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(activeOrg, nil)

		p, err := svc.Resolve(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, auth.KindOrgAdmin, p.Kind)
		assert.Equal(t, orgID, p.OrganizationID)
	})

	t.Run("banned organization blocks its admin", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByID(gomock.Any(), id).
			Return(&model.OrganizationAdmin{ID: id, OrganizationID: orgID, Status: model.AccountActive}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(bannedOrg, nil)

		_, err := svc.Resolve(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("resolves an employee", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByID(gomock.Any(), id).
			Return(&model.Employee{ID: id, OrganizationID: orgID, Status: model.AccountActive}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(activeOrg, nil)

		p, err := svc.Resolve(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, auth.KindEmployee, p.Kind)
		assert.Equal(t, id, p.EmployeeID)
	})

	t.Run("suspended employee is forbidden", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByID(gomock.Any(), id).
			Return(&model.Employee{ID: id, OrganizationID: orgID, Status: model.AccountSuspended}, nil)

		_, err := svc.Resolve(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown subject is forbidden, not not-found", func(t *testing.T) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewPrincipalService(identityRepo, orgRepo)

		id := uuid.New()
		identityRepo.EXPECT().
			FindSuperAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)

		_, err := svc.Resolve(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}
