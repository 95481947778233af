package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/middleware"
	"github.com/stackboard/stackboard/internal/mocks"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func serve(router chi.Router, method, path string, p *auth.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if p != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.PrincipalKey, p))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequireOrgView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	access := service.NewAccessService(
		mocks.NewMockProjectMemberRepositoryIface(ctrl),
		mocks.NewMockRoleRepositoryIface(ctrl),
	)

	router := chi.NewRouter()
	router.With(middleware.RequireOrgView(access)).
		Get("/organizations/{orgID}", okHandler)
	path := "/organizations/" + orgID.String()

	t.Run("super admin can fetch any organization", func(t *testing.T) {
		rec := serve(router, http.MethodGet, path, auth.NewSuperAdminPrincipal(uuid.New()))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee of the organization can fetch it", func(t *testing.T) {
		rec := serve(router, http.MethodGet, path, auth.NewEmployeePrincipal(uuid.New(), orgID, uuid.New()))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee of another organization is denied", func(t *testing.T) {
		rec := serve(router, http.MethodGet, path, auth.NewEmployeePrincipal(uuid.New(), uuid.New(), uuid.New()))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing principal is unauthenticated", func(t *testing.T) {
		rec := serve(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthorizeStatusCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()
	employee := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
	path := fmt.Sprintf("/organizations/%s/projects/%s/tickets", orgID, projectID)

	newRouter := func(memberRepo *mocks.MockProjectMemberRepositoryIface) chi.Router {
		access := service.NewAccessService(memberRepo, mocks.NewMockRoleRepositoryIface(ctrl))
		router := chi.NewRouter()
		router.With(middleware.Authorize(access,
			[]model.PermissionCode{model.PermTicketCreate}, true)).
			Post("/organizations/{orgID}/projects/{projectID}/tickets", okHandler)
		return router
	}

	t.Run("denied request gets 403", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)

		rec := serve(newRouter(memberRepo), http.MethodPost, path, employee)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("store failure gets 500, not 403", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, errors.New("connection reset by peer"))

		rec := serve(newRouter(memberRepo), http.MethodPost, path, employee)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireProjectAccessStatusCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	projectID := uuid.New()
	employeeID := uuid.New()
	employee := auth.NewEmployeePrincipal(employeeID, orgID, employeeID)
	path := fmt.Sprintf("/organizations/%s/projects/%s", orgID, projectID)

	newRouter := func(memberRepo *mocks.MockProjectMemberRepositoryIface) chi.Router {
		access := service.NewAccessService(memberRepo, mocks.NewMockRoleRepositoryIface(ctrl))
		router := chi.NewRouter()
		router.With(middleware.RequireProjectAccess(access)).
			Get("/organizations/{orgID}/projects/{projectID}", okHandler)
		return router
	}

	t.Run("non-member gets 403", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, domain.ErrMemberNotFound)

		rec := serve(newRouter(memberRepo), http.MethodGet, path, employee)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("store failure gets 500, not 403", func(t *testing.T) {
		memberRepo := mocks.NewMockProjectMemberRepositoryIface(ctrl)
		memberRepo.EXPECT().
			FindByEmployeeAndProject(gomock.Any(), employeeID, projectID).
			Return(nil, errors.New("connection reset by peer"))

		rec := serve(newRouter(memberRepo), http.MethodGet, path, employee)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
