// internal/repository/column.go
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

// ColumnPositionUpdate is one entry of a declarative column reorder.
type ColumnPositionUpdate struct {
	ColumnID uuid.UUID
	Position int
}

type TicketColumnRepositoryIface interface {
	Create(ctx context.Context, column *model.TicketColumn) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TicketColumn, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TicketColumn, error)
	Update(ctx context.Context, column *model.TicketColumn) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTickets(ctx context.Context, columnID uuid.UUID) (int64, error)
	Reorder(ctx context.Context, projectID uuid.UUID, updates []ColumnPositionUpdate) error
}

type TicketColumnRepository struct {
	db *gorm.DB
}

func NewTicketColumnRepository(db *gorm.DB) *TicketColumnRepository {
	return &TicketColumnRepository{db: db}
}

// Create appends the column at max(position)+1 within its project. The
// position read and the insert share one transaction so a concurrent
// reorder cannot interleave.
func (r *TicketColumnRepository) Create(ctx context.Context, column *model.TicketColumn) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&model.TicketColumn{}).
			Where("project_id = ?", column.ProjectID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPos).Error; err != nil {
			return fmt.Errorf("reading max position: %w", err)
		}
		column.Position = maxPos + 1

		if err := tx.Create(column).Error; err != nil {
			return fmt.Errorf("inserting column: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket column: %w", err)
	}
	return nil
}

func (r *TicketColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TicketColumn, error) {
	var column model.TicketColumn
	result := r.db.WithContext(ctx).First(&column, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketColumnNotFound
		}
		return nil, fmt.Errorf("failed to find ticket column: %w", result.Error)
	}
	return &column, nil
}

func (r *TicketColumnRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*model.TicketColumn, error) {
	var columns []*model.TicketColumn
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position").
		Find(&columns)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ticket columns: %w", result.Error)
	}
	return columns, nil
}

func (r *TicketColumnRepository) Update(ctx context.Context, column *model.TicketColumn) error {
	result := r.db.WithContext(ctx).Save(column)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket column: %w", result.Error)
	}
	return nil
}

func (r *TicketColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TicketColumn{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket column: %w", result.Error)
	}
	return nil
}

func (r *TicketColumnRepository) CountTickets(ctx context.Context, columnID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Ticket{}).Where("ticket_column_id = ?", columnID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count tickets in column: %w", result.Error)
	}
	return count, nil
}

// Reorder applies every position update in one transaction; either all
// of them commit or none do. Updates are scoped to the project so a
// stale ID cannot touch another tenant's rows.
func (r *TicketColumnRepository) Reorder(ctx context.Context, projectID uuid.UUID, updates []ColumnPositionUpdate) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&model.TicketColumn{}).
				Where("id = ? AND project_id = ?", u.ColumnID, projectID).
				Update("position", u.Position)
			if result.Error != nil {
				return fmt.Errorf("updating column %s: %w", u.ColumnID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("column %s disappeared during reorder", u.ColumnID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder ticket columns: %w", err)
	}
	return nil
}
