// internal/service/employee.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/email"
	"github.com/stackboard/stackboard/internal/email/mailer"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// EmployeeService covers the organization-admin-only employee surface.
type EmployeeService struct {
	employeeRepo   repository.EmployeeRepositoryIface
	identityRepo   repository.IdentityRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	emailService   *email.Service
	validate       *validator.Validate
}

func NewEmployeeService(
	employeeRepo repository.EmployeeRepositoryIface,
	identityRepo repository.IdentityRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	emailService *email.Service,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		identityRepo:   identityRepo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		validate:       validator.New(),
	}
}

type CreateEmployeeInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

// Create registers an employee with a generated initial password and
// sends the invitation mail. A failed send is logged, not fatal; the
// admin can re-invite.
func (s *EmployeeService) Create(ctx context.Context, orgID uuid.UUID, input CreateEmployeeInput) (*model.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	existing, err := s.identityRepo.FindEmployeeByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking existing employee: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	initialPassword, err := auth.GeneratePassword()
	if err != nil {
		return nil, fmt.Errorf("generating initial password: %w", err)
	}

	hashed, err := s.passwordHasher.Hash(initialPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	employee := &model.Employee{
		OrganizationID: orgID,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Position:       input.Position,
		PasswordHash:   hashed,
		Status:         model.AccountActive,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	if s.emailService != nil {
		if err := mailer.SendEmployeeInvite(s.emailService, employee.Email, employee.FirstName, org.Name, initialPassword); err != nil {
			slog.ErrorContext(ctx, "failed to send employee invite", "error", err, "employee", employee.ID)
		}
	}

	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, orgID, employeeID uuid.UUID) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.OrganizationID != orgID {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Employee, int64, error) {
	return s.employeeRepo.FindByOrganizationPaginated(ctx, orgID, offset, limit)
}

type UpdateEmployeeInput struct {
	FirstName *string              `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string              `json:"last_name"`
	Position  *string              `json:"position"`
	Status    *model.AccountStatus `json:"status"`
}

func (s *EmployeeService) Update(ctx context.Context, orgID, employeeID uuid.UUID, input UpdateEmployeeInput) (*model.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	employee, err := s.Get(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.Status != nil {
		switch *input.Status {
		case model.AccountActive, model.AccountInactive, model.AccountSuspended:
			employee.Status = *input.Status
		default:
			return nil, domain.NewValidationError("status", "unknown account status")
		}
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("updating employee: %w", err)
	}

	return employee, nil
}

// Delete removes the employee, their memberships and ticket assignments
// in one transaction.
func (s *EmployeeService) Delete(ctx context.Context, orgID, employeeID uuid.UUID) error {
	employee, err := s.Get(ctx, orgID, employeeID)
	if err != nil {
		return err
	}
	return s.employeeRepo.DeleteWithCleanup(ctx, employee)
}
