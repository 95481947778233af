// internal/repository/project.go
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

type ProjectRepositoryIface interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Project, int64, error)
	FindByMembershipPaginated(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]*model.Project, int64, error)
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Create(project)
	if result.Error != nil {
		return fmt.Errorf("failed to create project: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	result := r.db.WithContext(ctx).First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", result.Error)
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Save(project)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Project{}).Where("organization_id = ?", orgID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at").
		Offset(offset).Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated projects: %w", result.Error)
	}

	return projects, count, nil
}

// FindByMembershipPaginated returns the projects an employee is a member
// of, so employees only ever see boards they belong to.
func (r *ProjectRepository) FindByMembershipPaginated(ctx context.Context, employeeID uuid.UUID, offset, limit int) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var count int64

	base := r.db.WithContext(ctx).Model(&model.Project{}).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.employee_id = ?", employeeID)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count member projects: %w", err)
	}

	result := r.db.WithContext(ctx).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.employee_id = ?", employeeID).
		Order("projects.created_at").
		Offset(offset).Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find member projects: %w", result.Error)
	}

	return projects, count, nil
}
