// internal/repository/employee.go
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

type EmployeeRepositoryIface interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Employee, int64, error)
	DeleteWithCleanup(ctx context.Context, employee *model.Employee) error
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		return fmt.Errorf("failed to create employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	result := r.db.WithContext(ctx).Save(employee)
	if result.Error != nil {
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) FindByOrganizationPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Employee, int64, error) {
	var employees []*model.Employee
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Employee{}).Where("organization_id = ?", orgID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at").
		Offset(offset).Limit(limit).
		Find(&employees)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated employees: %w", result.Error)
	}

	return employees, count, nil
}

// DeleteWithCleanup removes the employee together with their project
// memberships and unassigns their tickets, all in one transaction.
func (r *EmployeeRepository) DeleteWithCleanup(ctx context.Context, employee *model.Employee) error {
	err := inTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.Ticket{}).
			Where("assignee_id = ?", employee.ID).
			Update("assignee_id", nil).Error; err != nil {
			return fmt.Errorf("unassigning tickets: %w", err)
		}

		if err := tx.Where("employee_id = ?", employee.ID).
			Delete(&model.ProjectMember{}).Error; err != nil {
			return fmt.Errorf("removing project memberships: %w", err)
		}

		if err := tx.Delete(&model.Employee{}, "id = ?", employee.ID).Error; err != nil {
			return fmt.Errorf("deleting employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
