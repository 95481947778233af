// internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// Project is owned by exactly one organization. Archived projects stay
// readable but reject every mutating operation.
type Project struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string        `gorm:"type:text;not null" json:"name"`
	Description    string        `gorm:"type:text" json:"description,omitempty"`
	Status         ProjectStatus `gorm:"type:project_status;not null;default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// ProjectMember grants an Employee a Role's permission set scoped to one
// project. One row per (employee, project).
type ProjectMember struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employee_project" json:"employee_id"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employee_project" json:"project_id"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Project  Project  `gorm:"foreignKey:ProjectID" json:"-"`
	Role     Role     `gorm:"foreignKey:RoleID" json:"-"`
}
