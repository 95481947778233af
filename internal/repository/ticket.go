// internal/repository/ticket.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"gorm.io/gorm"
)

// TicketPositionUpdate is one entry of a declarative ticket reorder: the
// ticket's final position and the column it ends up in.
type TicketPositionUpdate struct {
	TicketID       uuid.UUID
	Position       int
	TicketColumnID uuid.UUID
}

type TicketRepositoryIface interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	FindByIDsInProject(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) ([]*model.Ticket, error)
	FindByProjectPaginated(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*model.Ticket, int64, error)
	Update(ctx context.Context, ticket *model.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, projectID uuid.UUID, updates []TicketPositionUpdate) error
}

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create appends the ticket at max(position)+1 within its column. The
// position read and the insert share one transaction so a concurrent
// reorder cannot interleave.
func (r *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&model.Ticket{}).
			Where("project_id = ? AND ticket_column_id = ?", ticket.ProjectID, ticket.TicketColumnID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPos).Error; err != nil {
			return fmt.Errorf("reading max position: %w", err)
		}
		ticket.Position = maxPos + 1

		if err := tx.Create(ticket).Error; err != nil {
			return fmt.Errorf("inserting ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	var ticket model.Ticket
	result := r.db.WithContext(ctx).First(&ticket, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", result.Error)
	}
	return &ticket, nil
}

// FindByIDsInProject returns only the requested tickets that actually
// belong to the project; the caller compares counts to spot strays.
func (r *TicketRepository) FindByIDsInProject(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND id IN ?", projectID, ids).
		Find(&tickets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tickets by ids: %w", result.Error)
	}
	return tickets, nil
}

func (r *TicketRepository) FindByProjectPaginated(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*model.Ticket, int64, error) {
	var tickets []*model.Ticket
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Ticket{}).Where("project_id = ?", projectID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("ticket_column_id, position").
		Offset(offset).Limit(limit).
		Find(&tickets)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated tickets: %w", result.Error)
	}

	return tickets, count, nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	result := r.db.WithContext(ctx).Save(ticket)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Ticket{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	return nil
}

// Reorder applies every (position, column) update in one transaction;
// either all of them commit or none do. A vanished row aborts the batch
// so no partial reorder is ever observable.
func (r *TicketRepository) Reorder(ctx context.Context, projectID uuid.UUID, updates []TicketPositionUpdate) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&model.Ticket{}).
				Where("id = ? AND project_id = ?", u.TicketID, projectID).
				Updates(map[string]interface{}{
					"position":         u.Position,
					"ticket_column_id": u.TicketColumnID,
				})
			if result.Error != nil {
				return fmt.Errorf("updating ticket %s: %w", u.TicketID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("ticket %s disappeared during reorder", u.TicketID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder tickets: %w", err)
	}
	return nil
}
