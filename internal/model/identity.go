// internal/model/identity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus gates login and principal resolution. Only active
// accounts may act; everything else resolves to forbidden.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountInactive  AccountStatus = "inactive"
	AccountSuspended AccountStatus = "suspended"
)

// SuperAdmin is a platform operator. Super admins are not affiliated
// with any organization and are routed through dedicated endpoints.
type SuperAdmin struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string        `gorm:"type:text;not null" json:"first_name"`
	LastName     string        `gorm:"type:text" json:"last_name"`
	PasswordHash string        `gorm:"type:text;not null" json:"-"`
	Status       AccountStatus `gorm:"type:account_status;not null;default:'active'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// OrganizationAdmin has full authority over exactly one organization
// without needing per-project role grants.
type OrganizationAdmin struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName      string        `gorm:"type:text;not null" json:"first_name"`
	LastName       string        `gorm:"type:text" json:"last_name"`
	PasswordHash   string        `gorm:"type:text;not null" json:"-"`
	Status         AccountStatus `gorm:"type:account_status;not null;default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// Employee belongs to one organization; project authority flows through
// ProjectMember -> Role -> Permission.
type Employee struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName      string        `gorm:"type:text;not null" json:"first_name"`
	LastName       string        `gorm:"type:text" json:"last_name"`
	Position       string        `gorm:"type:text" json:"position,omitempty"`
	PasswordHash   string        `gorm:"type:text;not null" json:"-"`
	Status         AccountStatus `gorm:"type:account_status;not null;default:'active'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
