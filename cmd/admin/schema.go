// cmd/admin/schema.go
package main

import (
	"database/sql"

	"github.com/stackboard/stackboard/internal/model"

	_ "github.com/lib/pq"
)

// Migrator handles schema creation and catalog seeding
type Migrator struct {
	DB *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// InitializeSchema initializes the database schema
func (m *Migrator) InitializeSchema() error {
	_, err := m.DB.Exec(`
	CREATE EXTENSION IF NOT EXISTS citext;
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	DO $$ BEGIN
		CREATE TYPE account_status AS ENUM ('active', 'inactive', 'suspended');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE organization_status AS ENUM ('active', 'banned');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE project_status AS ENUM ('active', 'archived');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE ticket_priority AS ENUM ('low', 'medium', 'high', 'urgent');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE ticket_type AS ENUM ('task', 'bug', 'story', 'epic');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT,
		status organization_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS super_admins (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email CITEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		status account_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organization_admins (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		email CITEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		status account_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		email CITEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT,
		position TEXT,
		password_hash TEXT NOT NULL,
		status account_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		description TEXT,
		status project_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS permissions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		code TEXT NOT NULL UNIQUE,
		permission_group TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS role_permissions (
		role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id UUID NOT NULL REFERENCES permissions(id),
		PRIMARY KEY (role_id, permission_id)
	);

	CREATE TABLE IF NOT EXISTS project_members (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id UUID NOT NULL REFERENCES employees(id),
		project_id UUID NOT NULL REFERENCES projects(id),
		role_id UUID NOT NULL REFERENCES roles(id),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, project_id)
	);

	CREATE TABLE IF NOT EXISTS ticket_columns (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		project_id UUID NOT NULL REFERENCES projects(id),
		name TEXT NOT NULL,
		description TEXT,
		position INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		project_id UUID NOT NULL REFERENCES projects(id),
		ticket_column_id UUID NOT NULL REFERENCES ticket_columns(id),
		title TEXT NOT NULL,
		description TEXT,
		priority ticket_priority NOT NULL DEFAULT 'medium',
		type ticket_type NOT NULL DEFAULT 'task',
		position INT NOT NULL,
		assignee_id UUID REFERENCES employees(id),
		due_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_employees_organization ON employees(organization_id);
	CREATE INDEX IF NOT EXISTS idx_projects_organization ON projects(organization_id);
	CREATE INDEX IF NOT EXISTS idx_roles_organization ON roles(organization_id);
	CREATE INDEX IF NOT EXISTS idx_project_members_role ON project_members(role_id);
	CREATE INDEX IF NOT EXISTS idx_ticket_columns_project ON ticket_columns(project_id);
	CREATE INDEX IF NOT EXISTS idx_tickets_project ON tickets(project_id);
	CREATE INDEX IF NOT EXISTS idx_tickets_column ON tickets(ticket_column_id);
	`)

	return err
}

// SeedPermissions upserts the fixed permission catalog. Re-running is
// safe; descriptions are refreshed in place.
func (m *Migrator) SeedPermissions() (int, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	seeded := 0
	for _, p := range model.Catalog() {
		if _, err := tx.Exec(`
			INSERT INTO permissions (code, permission_group, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO UPDATE
			SET permission_group = EXCLUDED.permission_group,
			    description = EXCLUDED.description
		`, string(p.Code), string(p.Group), p.Description); err != nil {
			return 0, err
		}
		seeded++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return seeded, nil
}
