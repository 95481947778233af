// cmd/admin/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/config"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createSuperadminCmd.Flags().String("email", "", "Super admin email")
	createSuperadminCmd.Flags().String("first-name", "", "First name")
	createSuperadminCmd.Flags().String("last-name", "", "Last name")
	createSuperadminCmd.MarkFlagRequired("email")
	createSuperadminCmd.MarkFlagRequired("first-name")

	createOrgCmd.Flags().String("name", "", "Organization name")
	createOrgCmd.Flags().String("description", "", "Organization description")
	createOrgCmd.Flags().String("admin-email", "", "Organization admin email")
	createOrgCmd.Flags().String("admin-first-name", "", "Organization admin first name")
	createOrgCmd.Flags().String("admin-last-name", "", "Organization admin last name")
	createOrgCmd.MarkFlagRequired("name")
	createOrgCmd.MarkFlagRequired("admin-email")
	createOrgCmd.MarkFlagRequired("admin-first-name")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createSuperadminCmd)
	rootCmd.AddCommand(createOrgCmd)
}

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Stackboard operator tooling",
	Long:  `Admin is a CLI tool for schema setup, catalog seeding and bootstrap accounts.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Long:  `Create the enum types, tables and indexes Stackboard needs.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		migrator := NewMigrator(db)
		if err := migrator.InitializeSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		fmt.Println("Schema initialized successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed-permissions",
	Short: "Seed the permission catalog",
	Long:  `Upsert the fixed permission catalog into the permissions table.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		migrator := NewMigrator(db)
		seeded, err := migrator.SeedPermissions()
		if err != nil {
			log.Fatalf("Failed to seed permissions: %v", err)
		}

		fmt.Printf("Seeded %d permissions\n", seeded)
	},
}

var createSuperadminCmd = &cobra.Command{
	Use:   "create-superadmin",
	Short: "Create a platform super admin",
	Long:  `Create a super admin account with a generated initial password printed once.`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		db := openDB()
		defer db.Close()

		password, err := auth.GeneratePassword()
		if err != nil {
			log.Fatalf("Failed to generate password: %v", err)
		}
		hashed, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		var id string
		err = db.QueryRow(`
			INSERT INTO super_admins (email, first_name, last_name, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, email, firstName, lastName, hashed).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create super admin: %v", err)
		}

		fmt.Printf("Created super admin %s (%s)\n", email, id)
		fmt.Printf("Initial password: %s\n", password)
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org",
	Short: "Create an organization with its first admin",
	Long:  `Create an organization and its first organization admin in one transaction.`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		adminEmail, _ := cmd.Flags().GetString("admin-email")
		adminFirstName, _ := cmd.Flags().GetString("admin-first-name")
		adminLastName, _ := cmd.Flags().GetString("admin-last-name")

		db := openDB()
		defer db.Close()

		password, err := auth.GeneratePassword()
		if err != nil {
			log.Fatalf("Failed to generate password: %v", err)
		}
		hashed, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("Failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		var orgID string
		err = tx.QueryRow(`
			INSERT INTO organizations (name, description)
			VALUES ($1, $2)
			RETURNING id
		`, name, description).Scan(&orgID)
		if err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		var adminID string
		err = tx.QueryRow(`
			INSERT INTO organization_admins (organization_id, email, first_name, last_name, password_hash)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, orgID, adminEmail, adminFirstName, adminLastName, hashed).Scan(&adminID)
		if err != nil {
			log.Fatalf("Failed to create organization admin: %v", err)
		}

		if err := tx.Commit(); err != nil {
			log.Fatalf("Failed to commit: %v", err)
		}

		fmt.Printf("Created organization %s (%s)\n", name, orgID)
		fmt.Printf("Created organization admin %s (%s)\n", adminEmail, adminID)
		fmt.Printf("Initial admin password: %s\n", password)
	},
}

// openDB connects using --db when given, otherwise the environment
// configuration the API server uses.
func openDB() *sql.DB {
	conn := dbConnString
	if conn == "" {
		cfg := config.Load()
		conn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	db, err := sql.Open("postgres", conn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
