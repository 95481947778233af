// internal/middleware/authorize.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
)

// Authorize gates a project-scoped mutating endpoint on the required
// permission codes, with optional organization-admin bypass. Org and
// project IDs come from the route's {orgID}/{projectID} params.
func Authorize(access *service.AccessService, required []model.PermissionCode, allowOrgAdminBypass bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
				return
			}
			projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid project ID")
				return
			}

			if err := access.Authorize(r.Context(), principal, orgID, projectID, required, allowOrgAdminBypass); err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					respondWithError(w, http.StatusForbidden, "Forbidden")
					return
				}
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireProjectAccess gates read endpoints: organization admins of the
// org, or employees with a membership on the project.
func RequireProjectAccess(access *service.AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
				return
			}
			projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid project ID")
				return
			}

			canView, err := access.CanViewProject(r.Context(), principal, orgID, projectID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !canView {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOrgAccess gates organization-scoped reads on affiliation.
func RequireOrgAccess(access *service.AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
				return
			}

			if !access.HasOrganizationAccess(principal, orgID) {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOrgView gates the single-organization read. Principals of the
// organization may fetch it, and so may super admins, who administer
// every organization's lifecycle.
func RequireOrgView(access *service.AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
				return
			}

			if !principal.IsSuperAdmin() && !access.HasOrganizationAccess(principal, orgID) {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOrgAdmin gates the stricter organization-admin-only surface
// (employee and role management). This is intentionally narrower than
// Authorize: no permission set and no bypass flag.
func RequireOrgAdmin(access *service.AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
				return
			}

			if !access.IsOrganizationAdminOf(principal, orgID) {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperAdmin gates the organization-lifecycle surface.
func RequireSuperAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			if !principal.IsSuperAdmin() {
				respondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
