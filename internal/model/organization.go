// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationStatus string

const (
	OrgStatusActive OrganizationStatus = "active"
	OrgStatusBanned OrganizationStatus = "banned"
)

type Organization struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string             `gorm:"type:text;not null" json:"name"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	Status      OrganizationStatus `gorm:"type:organization_status;not null;default:'active'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	Employees []Employee `gorm:"foreignKey:OrganizationID" json:"-"`
	Projects  []Project  `gorm:"foreignKey:OrganizationID" json:"-"`
}
