package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/mocks"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	orgID := uuid.New()
	activeOrg := &model.Organization{ID: orgID, Status: model.OrgStatusActive}

	newService := func() (*service.AuthService, *mocks.MockIdentityRepositoryIface, *mocks.MockOrganizationRepositoryIface) {
		identityRepo := mocks.NewMockIdentityRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewAuthService(identityRepo, orgRepo, hasher, tokens)
		return svc, identityRepo, orgRepo
	}

	t.Run("employee logs in with valid credentials", func(t *testing.T) {
		svc, identityRepo, orgRepo := newService()

		employee := &model.Employee{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Email:          "dev@acme.test",
			PasswordHash:   hash,
			Status:         model.AccountActive,
		}
		identityRepo.EXPECT().
			FindSuperAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByEmail(gomock.Any(), "dev@acme.test").
			Return(employee, nil)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "dev@acme.test",
			Password: password,
		})
		assert.NoError(t, err)
		assert.Equal(t, auth.KindEmployee, out.Kind)

		claims, err := tokens.Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, employee.ID.String(), claims.SubjectID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		svc, identityRepo, orgRepo := newService()

		identityRepo.EXPECT().
			FindSuperAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByEmail(gomock.Any(), "dev@acme.test").
			Return(&model.Employee{
				ID:             uuid.New(),
				OrganizationID: orgID,
				Email:          "dev@acme.test",
				PasswordHash:   hash,
				Status:         model.AccountActive,
			}, nil)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "dev@acme.test",
			Password: "not the password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		identityRepo.EXPECT().
			FindSuperAdminByEmail(gomock.Any(), "ghost@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByEmail(gomock.Any(), "ghost@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByEmail(gomock.Any(), "ghost@acme.test").
			Return(nil, domain.ErrNotFound)

		_, err = svc.Login(context.Background(), service.LoginInput{
			Email:    "ghost@acme.test",
			Password: password,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("banned organization blocks employee login", func(t *testing.T) {
		svc, identityRepo, orgRepo := newService()

		identityRepo.EXPECT().
			FindSuperAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindOrgAdminByEmail(gomock.Any(), "dev@acme.test").
			Return(nil, domain.ErrNotFound)
		identityRepo.EXPECT().
			FindEmployeeByEmail(gomock.Any(), "dev@acme.test").
			Return(&model.Employee{
				ID:             uuid.New(),
				OrganizationID: orgID,
				Email:          "dev@acme.test",
				PasswordHash:   hash,
				Status:         model.AccountActive,
			}, nil)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(&model.Organization{
			ID:     orgID,
			Status: model.OrgStatusBanned,
		}, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "dev@acme.test",
			Password: password,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("malformed email never reaches the repositories", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "not-an-email",
			Password: password,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
