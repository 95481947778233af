// internal/auth/principal.go
package auth

import "github.com/google/uuid"

type PrincipalKind string

const (
	KindSuperAdmin PrincipalKind = "super_admin"
	KindOrgAdmin   PrincipalKind = "organization_admin"
	KindEmployee   PrincipalKind = "employee"
)

// Principal is the authenticated identity making a request, resolved to
// exactly one kind. It is constructed once per request and threaded as
// an immutable value through every downstream check and handler.
type Principal struct {
	Kind PrincipalKind
	ID   uuid.UUID

	// OrganizationID is set for organization admins and employees.
	OrganizationID uuid.UUID

	// EmployeeID is set for employees and is what project memberships
	// key on.
	EmployeeID uuid.UUID
}

func NewSuperAdminPrincipal(id uuid.UUID) *Principal {
	return &Principal{Kind: KindSuperAdmin, ID: id}
}

func NewOrgAdminPrincipal(id, organizationID uuid.UUID) *Principal {
	return &Principal{Kind: KindOrgAdmin, ID: id, OrganizationID: organizationID}
}

func NewEmployeePrincipal(id, organizationID, employeeID uuid.UUID) *Principal {
	return &Principal{Kind: KindEmployee, ID: id, OrganizationID: organizationID, EmployeeID: employeeID}
}

func (p *Principal) IsSuperAdmin() bool { return p.Kind == KindSuperAdmin }
func (p *Principal) IsOrgAdmin() bool   { return p.Kind == KindOrgAdmin }
func (p *Principal) IsEmployee() bool   { return p.Kind == KindEmployee }
