// internal/model/permission.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PermissionCode is an atomic capability identifier from a fixed,
// closed catalog. Tenants can only change which codes a Role carries,
// never the catalog itself.
type PermissionCode string

const (
	PermProjectUpdate  PermissionCode = "PROJECT_UPDATE"
	PermProjectArchive PermissionCode = "PROJECT_ARCHIVE"

	PermProjectMemberCreate PermissionCode = "PROJECT_MEMBER_CREATE"
	PermProjectMemberUpdate PermissionCode = "PROJECT_MEMBER_UPDATE"
	PermProjectMemberDelete PermissionCode = "PROJECT_MEMBER_DELETE"

	PermTicketCreate  PermissionCode = "TICKET_CREATE"
	PermTicketUpdate  PermissionCode = "TICKET_UPDATE"
	PermTicketDelete  PermissionCode = "TICKET_DELETE"
	PermTicketReorder PermissionCode = "TICKET_REORDER"

	PermTicketColumnCreate  PermissionCode = "TICKET_COLUMN_CREATE"
	PermTicketColumnUpdate  PermissionCode = "TICKET_COLUMN_UPDATE"
	PermTicketColumnDelete  PermissionCode = "TICKET_COLUMN_DELETE"
	PermTicketColumnReorder PermissionCode = "TICKET_COLUMN_REORDER"
)

type PermissionGroup string

const (
	GroupProject       PermissionGroup = "PROJECT"
	GroupProjectMember PermissionGroup = "PROJECT_MEMBER"
	GroupTicket        PermissionGroup = "TICKET"
	GroupTicketColumn  PermissionGroup = "TICKET_COLUMN"
)

// Permission is a global catalog row. Rows are seeded by the operator
// CLI and never created or deleted by tenants.
type Permission struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code        PermissionCode  `gorm:"type:text;uniqueIndex;not null" json:"code"`
	Group       PermissionGroup `gorm:"column:permission_group;type:text;not null" json:"group"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Role is scoped to one organization and carries a subset of the
// permission catalog. Deletion is blocked while any ProjectMember
// references it.
type Role struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

// PermissionCodes returns the codes carried by the role's loaded
// permission association.
func (r *Role) PermissionCodes() PermissionSet {
	set := make(PermissionSet, len(r.Permissions))
	for _, p := range r.Permissions {
		set[p.Code] = struct{}{}
	}
	return set
}

// PermissionSet is the resolved capability set of a membership.
type PermissionSet map[PermissionCode]struct{}

func NewPermissionSet(codes ...PermissionCode) PermissionSet {
	set := make(PermissionSet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

func (s PermissionSet) Contains(code PermissionCode) bool {
	_, ok := s[code]
	return ok
}

// IntersectsAny reports whether at least one required code is granted.
// Authorization uses OR semantics over the required set.
func (s PermissionSet) IntersectsAny(required []PermissionCode) bool {
	for _, c := range required {
		if _, ok := s[c]; ok {
			return true
		}
	}
	return false
}

// Catalog returns the full fixed permission catalog. The slice is
// rebuilt on each call so callers may not mutate shared state.
func Catalog() []Permission {
	return []Permission{
		{Code: PermProjectUpdate, Group: GroupProject, Description: "Update project name, description and settings"},
		{Code: PermProjectArchive, Group: GroupProject, Description: "Archive or unarchive a project"},
		{Code: PermProjectMemberCreate, Group: GroupProjectMember, Description: "Add employees to a project"},
		{Code: PermProjectMemberUpdate, Group: GroupProjectMember, Description: "Change a project member's role"},
		{Code: PermProjectMemberDelete, Group: GroupProjectMember, Description: "Remove employees from a project"},
		{Code: PermTicketCreate, Group: GroupTicket, Description: "Create tickets"},
		{Code: PermTicketUpdate, Group: GroupTicket, Description: "Update tickets"},
		{Code: PermTicketDelete, Group: GroupTicket, Description: "Delete tickets"},
		{Code: PermTicketReorder, Group: GroupTicket, Description: "Reorder tickets within and across columns"},
		{Code: PermTicketColumnCreate, Group: GroupTicketColumn, Description: "Create ticket columns"},
		{Code: PermTicketColumnUpdate, Group: GroupTicketColumn, Description: "Update ticket columns"},
		{Code: PermTicketColumnDelete, Group: GroupTicketColumn, Description: "Delete ticket columns"},
		{Code: PermTicketColumnReorder, Group: GroupTicketColumn, Description: "Reorder ticket columns within a project"},
	}
}

// ValidPermissionCode reports whether code belongs to the catalog.
func ValidPermissionCode(code PermissionCode) bool {
	switch code {
	case PermProjectUpdate, PermProjectArchive,
		PermProjectMemberCreate, PermProjectMemberUpdate, PermProjectMemberDelete,
		PermTicketCreate, PermTicketUpdate, PermTicketDelete, PermTicketReorder,
		PermTicketColumnCreate, PermTicketColumnUpdate, PermTicketColumnDelete, PermTicketColumnReorder:
		return true
	}
	return false
}
