package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/karan/societyhub/internal/app/auth"
	appControllers "github.com/karan/societyhub/internal/app/controllers"
	appRepos "github.com/karan/societyhub/internal/app/repositories"
	appRoutes "github.com/karan/societyhub/internal/app/routes"
	appServices "github.com/karan/societyhub/internal/app/services"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/config"
	"github.com/karan/societyhub/internal/db"
	appMiddleware "github.com/karan/societyhub/internal/middleware"
	pkgAuth "github.com/karan/societyhub/internal/pkg/auth"
	"github.com/karan/societyhub/internal/pkg/helpers"
	"github.com/karan/societyhub/internal/pkg/logger"
	"github.com/karan/societyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	ResidentService       *appServices.ResidentService
	PropertyService       *appServices.PropertyService
	BillingService        *appServices.BillingService
	MaintenanceService    *appServices.MaintenanceService
	EventService          *appServices.EventService
	AuthController        *appControllers.AuthController
	ResidentController    *appControllers.ResidentController
	PropertyController    *appControllers.PropertyController
	BillingController     *appControllers.BillingController
	MaintenanceController *appControllers.MaintenanceController
	EventController       *appControllers.EventController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Database              *db.PostgresDB
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Policy                *appAuth.Policy
	Views                 *cache.ViewCache
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and seeds the default
// admin account. The schema itself is managed outside the application.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.CreateDefaultAdmin(ctx, database.Pool, cfg, lgr); err != nil {
		// Not fatal: the instance can still serve existing accounts
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Database = database
	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Policy = appAuth.NewPolicy()

	views, err := cache.NewViewCache(cfg.Redis.URL, helpers.ParseDuration(cfg.Redis.TTL, 5*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize view cache: %w", err)
	}
	deps.Views = views

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminRepository,
		deps.Repos.ResidentRepository,
		deps.JWTService,
		deps.Views,
		lgr,
	)

	deps.ResidentService = appServices.NewResidentService(deps.Repos.ResidentRepository, deps.Policy, deps.Views)
	deps.PropertyService = appServices.NewPropertyService(deps.Repos.PropertyRepository, deps.Policy, deps.Views)
	deps.BillingService = appServices.NewBillingService(
		deps.Repos.BillRepository,
		deps.Repos.PaymentRepository,
		database,
		deps.Policy,
		deps.Views,
		lgr,
	)
	deps.MaintenanceService = appServices.NewMaintenanceService(deps.Repos.MaintenanceRepository, deps.Policy, deps.Views)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.Policy, deps.Views)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ResidentController = appControllers.NewResidentController(deps.ResidentService)
	deps.PropertyController = appControllers.NewPropertyController(deps.PropertyService)
	deps.BillingController = appControllers.NewBillingController(deps.BillingService)
	deps.MaintenanceController = appControllers.NewMaintenanceController(deps.MaintenanceService)
	deps.EventController = appControllers.NewEventController(deps.EventService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Bound every request so storage waits on an exhausted pool fail instead
	// of hanging on the deadline-free request context.
	router.Use(appMiddleware.RequestTimeout(deps.Database.AcquireTimeout()))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ResidentController,
		deps.PropertyController,
		deps.BillingController,
		deps.MaintenanceController,
		deps.EventController,
		deps.AuthMiddleware,
	)

	return router
}
