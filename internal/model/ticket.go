// internal/model/ticket.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type TicketType string

const (
	TypeTask  TicketType = "task"
	TypeBug   TicketType = "bug"
	TypeStory TicketType = "story"
	TypeEpic  TicketType = "epic"
)

// TicketColumn groups tickets inside one project. Position uniqueness
// within a project is enforced at reorder time; creation appends at the
// tail inside the insert transaction.
type TicketColumn struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Position    int       `gorm:"not null" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

type Ticket struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	TicketColumnID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ticket_column_id"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	Priority       TicketPriority `gorm:"type:ticket_priority;not null;default:'medium'" json:"priority"`
	Type           TicketType     `gorm:"type:ticket_type;not null;default:'task'" json:"type"`
	Position       int            `gorm:"not null" json:"position"`
	AssigneeID     *uuid.UUID     `gorm:"type:uuid" json:"assignee_id,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Project      Project      `gorm:"foreignKey:ProjectID" json:"-"`
	TicketColumn TicketColumn `gorm:"foreignKey:TicketColumnID" json:"-"`
	Assignee     *Employee    `gorm:"foreignKey:AssigneeID" json:"-"`
}

func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidTicketType(t TicketType) bool {
	switch t {
	case TypeTask, TypeBug, TypeStory, TypeEpic:
		return true
	}
	return false
}
