// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./identity.go -destination=../mocks/mock_identity_repository.go -package=mocks IdentityRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -source=./project.go -destination=../mocks/mock_project_repository.go -package=mocks ProjectRepositoryIface
//go:generate mockgen -source=./member.go -destination=../mocks/mock_member_repository.go -package=mocks ProjectMemberRepositoryIface
//go:generate mockgen -source=./role.go -destination=../mocks/mock_role_repository.go -package=mocks RoleRepositoryIface
//go:generate mockgen -source=./column.go -destination=../mocks/mock_column_repository.go -package=mocks TicketColumnRepositoryIface
//go:generate mockgen -source=./ticket.go -destination=../mocks/mock_ticket_repository.go -package=mocks TicketRepositoryIface
