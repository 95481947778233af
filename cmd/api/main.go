// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/config"
	"github.com/stackboard/stackboard/internal/email"
	"github.com/stackboard/stackboard/internal/handler"
	"github.com/stackboard/stackboard/internal/middleware"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/repository"
	"github.com/stackboard/stackboard/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	identityRepo := repository.NewIdentityRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewProjectMemberRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	columnRepo := repository.NewTicketColumnRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize services
	authService := service.NewAuthService(identityRepo, orgRepo, passwordHasher, tokenManager)
	principalService := service.NewPrincipalService(identityRepo, orgRepo)
	accessService := service.NewAccessService(memberRepo, roleRepo)
	orgService := service.NewOrganizationService(orgRepo)
	employeeService := service.NewEmployeeService(employeeRepo, identityRepo, orgRepo, passwordHasher, emailService)
	roleService := service.NewRoleService(roleRepo, memberRepo)
	projectService := service.NewProjectService(projectRepo, orgRepo)
	memberService := service.NewMemberService(memberRepo, projectRepo, employeeRepo, roleRepo)
	columnService := service.NewColumnService(columnRepo, projectRepo)
	ticketService := service.NewTicketService(ticketRepo, columnRepo, projectRepo, employeeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	roleHandler := handler.NewRoleHandler(roleService)
	projectHandler := handler.NewProjectHandler(projectService)
	memberHandler := handler.NewMemberHandler(memberService)
	columnHandler := handler.NewColumnHandler(columnService)
	ticketHandler := handler.NewTicketHandler(ticketService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity(tokenManager, principalService))

			r.Route("/organizations", func(r chi.Router) {
				// Organization lifecycle is super-admin territory.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin())
					r.Post("/", orgHandler.Create)
					r.Get("/", orgHandler.List)
					r.Put("/{orgID}", orgHandler.Update)
					r.Post("/{orgID}/ban", orgHandler.Ban)
					r.Post("/{orgID}/unban", orgHandler.Unban)
				})

				r.Route("/{orgID}", func(r chi.Router) {
					r.With(middleware.RequireOrgView(accessService)).Get("/", orgHandler.Get)

					// Employee and role management: organization admins only.
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireOrgAdmin(accessService))

						r.Route("/employees", func(r chi.Router) {
							r.Post("/", employeeHandler.Create)
							r.Get("/", employeeHandler.List)
							r.Get("/{employeeID}", employeeHandler.Get)
							r.Put("/{employeeID}", employeeHandler.Update)
							r.Delete("/{employeeID}", employeeHandler.Delete)
						})

						r.Route("/roles", func(r chi.Router) {
							r.Post("/", roleHandler.Create)
							r.Get("/", roleHandler.List)
							r.Get("/{roleID}", roleHandler.Get)
							r.Put("/{roleID}", roleHandler.Update)
							r.Delete("/{roleID}", roleHandler.Delete)
						})

						r.Post("/projects", projectHandler.Create)
					})

					r.With(middleware.RequireOrgAccess(accessService)).
						Get("/permissions", roleHandler.ListPermissions)
					r.With(middleware.RequireOrgAccess(accessService)).
						Get("/projects", projectHandler.List)

					r.Route("/projects/{projectID}", func(r chi.Router) {
						r.With(middleware.RequireProjectAccess(accessService)).
							Get("/", projectHandler.Get)

						r.With(middleware.Authorize(accessService,
							[]model.PermissionCode{model.PermProjectUpdate}, true)).
							Put("/", projectHandler.Update)
						r.With(middleware.Authorize(accessService,
							[]model.PermissionCode{model.PermProjectArchive}, true)).
							Post("/archive", projectHandler.Archive)
						r.With(middleware.Authorize(accessService,
							[]model.PermissionCode{model.PermProjectArchive}, true)).
							Post("/unarchive", projectHandler.Unarchive)

						r.Route("/members", func(r chi.Router) {
							r.With(middleware.RequireProjectAccess(accessService)).
								Get("/", memberHandler.List)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermProjectMemberCreate}, true)).
								Post("/", memberHandler.Add)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermProjectMemberUpdate}, true)).
								Put("/{memberID}", memberHandler.UpdateRole)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermProjectMemberDelete}, true)).
								Delete("/{memberID}", memberHandler.Remove)
						})

						r.Route("/columns", func(r chi.Router) {
							r.With(middleware.RequireProjectAccess(accessService)).
								Get("/", columnHandler.List)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketColumnCreate}, true)).
								Post("/", columnHandler.Create)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketColumnReorder}, true)).
								Put("/reorder", columnHandler.Reorder)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketColumnUpdate}, true)).
								Put("/{columnID}", columnHandler.Update)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketColumnDelete}, true)).
								Delete("/{columnID}", columnHandler.Delete)
						})

						r.Route("/tickets", func(r chi.Router) {
							r.With(middleware.RequireProjectAccess(accessService)).
								Get("/", ticketHandler.List)
							r.With(middleware.RequireProjectAccess(accessService)).
								Get("/{ticketID}", ticketHandler.Get)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketCreate}, true)).
								Post("/", ticketHandler.Create)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketReorder}, true)).
								Put("/reorder", ticketHandler.Reorder)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketUpdate}, true)).
								Put("/{ticketID}", ticketHandler.Update)
							r.With(middleware.Authorize(accessService,
								[]model.PermissionCode{model.PermTicketDelete}, true)).
								Delete("/{ticketID}", ticketHandler.Delete)
						})
					})
				})
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
