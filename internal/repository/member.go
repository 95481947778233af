// internal/repository/member.go
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

type ProjectMemberRepositoryIface interface {
	Create(ctx context.Context, member *model.ProjectMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectMember, error)
	FindByEmployeeAndProject(ctx context.Context, employeeID, projectID uuid.UUID) (*model.ProjectMember, error)
	FindByProjectPaginated(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*model.ProjectMember, int64, error)
	Update(ctx context.Context, member *model.ProjectMember) error
	DeleteWithTicketUnassign(ctx context.Context, member *model.ProjectMember) error
	CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}

type ProjectMemberRepository struct {
	db *gorm.DB
}

func NewProjectMemberRepository(db *gorm.DB) *ProjectMemberRepository {
	return &ProjectMemberRepository{db: db}
}

func (r *ProjectMemberRepository) Create(ctx context.Context, member *model.ProjectMember) error {
	result := r.db.WithContext(ctx).Create(member)
	if result.Error != nil {
		return fmt.Errorf("failed to create project member: %w", result.Error)
	}
	return nil
}

func (r *ProjectMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectMember, error) {
	var member model.ProjectMember
	result := r.db.WithContext(ctx).First(&member, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find project member: %w", result.Error)
	}
	return &member, nil
}

func (r *ProjectMemberRepository) FindByEmployeeAndProject(ctx context.Context, employeeID, projectID uuid.UUID) (*model.ProjectMember, error) {
	var member model.ProjectMember
	result := r.db.WithContext(ctx).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find project member: %w", result.Error)
	}
	return &member, nil
}

func (r *ProjectMemberRepository) FindByProjectPaginated(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]*model.ProjectMember, int64, error) {
	var members []*model.ProjectMember
	var count int64

	query := r.db.WithContext(ctx).Model(&model.ProjectMember{}).Where("project_id = ?", projectID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count project members: %w", err)
	}

	result := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Role").
		Where("project_id = ?", projectID).
		Order("created_at").
		Offset(offset).Limit(limit).
		Find(&members)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated project members: %w", result.Error)
	}

	return members, count, nil
}

func (r *ProjectMemberRepository) Update(ctx context.Context, member *model.ProjectMember) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		return fmt.Errorf("failed to update project member: %w", result.Error)
	}
	return nil
}

// DeleteWithTicketUnassign removes the membership and unassigns the
// employee's tickets in the same project, atomically. The employee row
// itself is untouched.
func (r *ProjectMemberRepository) DeleteWithTicketUnassign(ctx context.Context, member *model.ProjectMember) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.Ticket{}).
			Where("project_id = ? AND assignee_id = ?", member.ProjectID, member.EmployeeID).
			Update("assignee_id", nil).Error; err != nil {
			return fmt.Errorf("unassigning tickets: %w", err)
		}

		if err := tx.Delete(&model.ProjectMember{}, "id = ?", member.ID).Error; err != nil {
			return fmt.Errorf("deleting membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	return nil
}

func (r *ProjectMemberRepository) CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProjectMember{}).Where("role_id = ?", roleID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count members by role: %w", result.Error)
	}
	return count, nil
}
