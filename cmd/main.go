package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"diligent-backend/internal/config"
	"diligent-backend/internal/features/audit_logs"
	"diligent-backend/internal/features/channels"
	"diligent-backend/internal/features/encryption/secrets"
	"diligent-backend/internal/features/mail"
	messages_controllers "diligent-backend/internal/features/messages/controllers"
	messages_repositories "diligent-backend/internal/features/messages/repositories"
	messages_services "diligent-backend/internal/features/messages/services"
	system_healthcheck "diligent-backend/internal/features/system/healthcheck"
	users_controllers "diligent-backend/internal/features/users/controllers"
	users_middleware "diligent-backend/internal/features/users/middleware"
	users_repositories "diligent-backend/internal/features/users/repositories"
	users_services "diligent-backend/internal/features/users/services"
	workspaces_controllers "diligent-backend/internal/features/workspaces/controllers"
	workspaces_repositories "diligent-backend/internal/features/workspaces/repositories"
	workspaces_services "diligent-backend/internal/features/workspaces/services"
	"diligent-backend/internal/storage"
	env_utils "diligent-backend/internal/util/env"
	"diligent-backend/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type application struct {
	tokenService *users_services.TokenService
	userService  *users_services.UserService

	auditLogCleanupService *audit_logs.AuditLogCleanupService

	userController        *users_controllers.UserController
	healthcheckController *system_healthcheck.HealthcheckController
	protectedControllers  []interface{ RegisterRoutes(router *gin.RouterGroup) }
}

// @title Diligent Backend API
// @version 1.0
// @description Messaging API with workspaces, channels and threaded messages

// @host localhost:3010
// @BasePath /api/v0
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()
	cfg := config.GetEnv()

	runMigrations(log, cfg)

	db, err := storage.Open(storage.Options{
		Dsn:          cfg.DatabaseDsn,
		MaxOpenConns: cfg.DbMaxOpenConns,
		MaxIdleConns: cfg.DbMaxIdleConns,
	}, log)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	app := setUpDependencies(db, cfg, log)

	handlePasswordReset(log, db, app.userService)

	if cfg.EnvMode == env_utils.EnvModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp, cfg)
	setUpRoutes(ginApp, app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runBackgroundTasks(ctx, log, app)

	startServerWithGracefulShutdown(ctx, log, cfg, ginApp)

	if err := storage.Close(db); err != nil {
		log.Error("Failed to close database", "error", err)
	}
}

func setUpDependencies(db *gorm.DB, cfg config.EnvVariables, log *slog.Logger) *application {
	auditLogService := audit_logs.NewAuditLogService(audit_logs.NewAuditLogRepository(db), log)

	secretKeyService := secrets.NewSecretKeyService(cfg.JWTSecret, cfg.SecretKeyPath)
	tokenService := users_services.NewTokenService(secretKeyService, cfg.TokenTTL)
	userService := users_services.NewUserService(
		users_repositories.NewUserRepository(db),
		tokenService,
		log,
	)
	userService.SetAuditLogWriter(auditLogService)

	membershipService := workspaces_services.NewMembershipService(
		workspaces_repositories.NewMembershipRepository(db),
	)
	workspaceService := workspaces_services.NewWorkspaceService(
		workspaces_repositories.NewWorkspaceRepository(db),
		membershipService,
		auditLogService,
	)

	channelService := channels.NewChannelService(channels.NewChannelRepository(db), membershipService)

	messageService := messages_services.NewMessageService(
		messages_repositories.NewMessageRepository(db),
		channelService,
		log,
	)
	messageService.SetAuditLogWriter(auditLogService)

	mailService := mail.NewMailService(mail.NewMailRepository(db), log)

	healthcheckService := system_healthcheck.NewHealthcheckService(storage.NewPinger(db), log)

	return &application{
		tokenService: tokenService,
		userService:  userService,
		auditLogCleanupService: audit_logs.NewAuditLogCleanupService(
			auditLogService,
			cfg.AuditLogRetentionDays,
			log,
		),
		userController: users_controllers.NewUserController(
			userService,
			tokenService,
			cfg.LoginRateLimit,
			cfg.LoginRateBurst,
		),
		healthcheckController: system_healthcheck.NewHealthcheckController(healthcheckService),
		protectedControllers: []interface{ RegisterRoutes(router *gin.RouterGroup) }{
			workspaces_controllers.NewWorkspaceController(workspaceService),
			channels.NewChannelController(channelService),
			messages_controllers.NewMessageController(messageService),
			mail.NewMailController(mailService),
		},
	}
}

func setUpRoutes(r *gin.Engine, app *application) {
	v0 := r.Group("/api/v0")

	// Public routes (only sign in, token validation and healthcheck)
	app.userController.RegisterRoutes(v0)
	app.healthcheckController.RegisterRoutes(v0)

	protected := v0.Group("")
	protected.Use(users_middleware.AuthMiddleware(app.tokenService))

	app.userController.RegisterProtectedRoutes(protected)
	for _, controller := range app.protectedControllers {
		controller.RegisterRoutes(protected)
	}
}

func handlePasswordReset(log *slog.Logger, db *gorm.DB, userService *users_services.UserService) {
	newPassword := flag.String("new-password", "", "Set a new password for the user")
	email := flag.String("email", "", "Email of the user to reset password")

	flag.Parse()

	if *newPassword == "" {
		return
	}

	log.Info("Found reset password command - resetting password...")

	if *email == "" {
		log.Info("No email provided, please provide an email via --email=\"some@email.com\" flag")
		os.Exit(1)
	}

	err := userService.ChangeUserPasswordByEmail(context.Background(), *email, *newPassword)
	_ = storage.Close(db)
	if err != nil {
		log.Error("Failed to reset password", "error", err)
		os.Exit(1)
	}

	log.Info("Password reset successfully")
	os.Exit(0)
}

func runBackgroundTasks(ctx context.Context, log *slog.Logger, app *application) {
	log.Info("Preparing to run background tasks...")

	go runWithPanicLogging(log, "audit log cleanup service", func() {
		if err := app.auditLogCleanupService.Run(ctx); err != nil {
			log.Error("Audit log cleanup service stopped", "error", err)
		}
	})
}

func runWithPanicLogging(log *slog.Logger, serviceName string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in "+serviceName, "error", r)
		}
	}()
	fn()
}

func startServerWithGracefulShutdown(
	ctx context.Context,
	log *slog.Logger,
	cfg config.EnvVariables,
	app *gin.Engine,
) {
	host := ""
	if cfg.EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:              host + ":" + cfg.HTTPPort,
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen:", "error", err)
		}
	}()

	log.Info("Diligent is running!", "http", "http://localhost:"+cfg.HTTPPort)

	<-ctx.Done()
	log.Info("Shutdown signal received")

	// in-flight requests get 10 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func runMigrations(log *slog.Logger, cfg config.EnvVariables) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+cfg.DatabaseDsn,
	)

	// Set the working directory to where migrations are located
	cmd.Dir = "./migrations"

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully", "output", string(output))
}

func enableCors(ginApp *gin.Engine, cfg config.EnvVariables) {
	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.CorsOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"Accept",
			"Accept-Language",
			"Accept-Encoding",
		},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
