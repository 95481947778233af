// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/domain"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
)

// AuthService handles password login across the three identity tables.
type AuthService struct {
	identityRepo   repository.IdentityRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewAuthService(
	identityRepo repository.IdentityRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *AuthService {
	return &AuthService{
		identityRepo:   identityRepo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token string             `json:"token"`
	Kind  auth.PrincipalKind `json:"kind"`
}

// credential is the slice of an identity row login needs, regardless of
// which table it came from.
type credential struct {
	id     string
	email  string
	hash   string
	active bool
	kind   auth.PrincipalKind
}

// Login verifies the password for whichever identity table holds the
// email. Lookup failures and bad passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	cred, err := s.findCredential(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !cred.active {
		return nil, domain.ErrForbidden
	}

	verified, err := s.passwordHasher.Verify(input.Password, cred.hash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(cred.id, cred.email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{Token: token, Kind: cred.kind}, nil
}

func (s *AuthService) findCredential(ctx context.Context, email string) (*credential, error) {
	superAdmin, err := s.identityRepo.FindSuperAdminByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("finding super admin: %w", err)
	}
	if superAdmin != nil {
		return &credential{
			id:     superAdmin.ID.String(),
			email:  superAdmin.Email,
			hash:   superAdmin.PasswordHash,
			active: superAdmin.Status == model.AccountActive,
			kind:   auth.KindSuperAdmin,
		}, nil
	}

	orgAdmin, err := s.identityRepo.FindOrgAdminByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("finding organization admin: %w", err)
	}
	if orgAdmin != nil {
		active, err := s.organizationActive(ctx, orgAdmin.OrganizationID)
		if err != nil {
			return nil, err
		}
		return &credential{
			id:     orgAdmin.ID.String(),
			email:  orgAdmin.Email,
			hash:   orgAdmin.PasswordHash,
			active: active && orgAdmin.Status == model.AccountActive,
			kind:   auth.KindOrgAdmin,
		}, nil
	}

	employee, err := s.identityRepo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	active, err := s.organizationActive(ctx, employee.OrganizationID)
	if err != nil {
		return nil, err
	}
	return &credential{
		id:     employee.ID.String(),
		email:  employee.Email,
		hash:   employee.PasswordHash,
		active: active && employee.Status == model.AccountActive,
		kind:   auth.KindEmployee,
	}, nil
}

func (s *AuthService) organizationActive(ctx context.Context, orgID uuid.UUID) (bool, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking organization status: %w", err)
	}
	return org.Status == model.OrgStatusActive, nil
}
