package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appCollection "github.com/meera/campusboard/internal/app/collection"
	appControllers "github.com/meera/campusboard/internal/app/controllers"
	appMigrations "github.com/meera/campusboard/internal/app/migrations"
	appRepos "github.com/meera/campusboard/internal/app/repositories"
	appRoutes "github.com/meera/campusboard/internal/app/routes"
	appServices "github.com/meera/campusboard/internal/app/services"
	"github.com/meera/campusboard/internal/config"
	"github.com/meera/campusboard/internal/db"
	appMiddleware "github.com/meera/campusboard/internal/middleware"
	pkgAuth "github.com/meera/campusboard/internal/pkg/auth"
	"github.com/meera/campusboard/internal/pkg/helpers"
	"github.com/meera/campusboard/internal/pkg/logger"
	"github.com/meera/campusboard/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyCoordinator *appCollection.FacultyCoordinator
	BuzzCoordinator    *appCollection.BuzzCoordinator
	AuthService        *appServices.AuthService
	FacultyService     *appServices.FacultyService
	BuzzService        *appServices.BuzzService
	InquiryService     *appServices.InquiryService
	AuthController     *appControllers.AuthController
	ProfileController  *appControllers.ProfileController
	FacultyController  *appControllers.FacultyController
	BuzzController     *appControllers.BuzzController
	InquiryController  *appControllers.InquiryController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Seeding failures are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, coordinators, services and
// controllers. The coordinators load their collections here, so a failing
// store surfaces at startup rather than on the first request.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	notifier := appCollection.NewLogNotifier(lgr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	deps.FacultyCoordinator, err = appCollection.NewFacultyCoordinator(ctx, deps.Repos.FacultyRepository, notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to load faculty collection: %w", err)
	}

	deps.BuzzCoordinator, err = appCollection.NewBuzzCoordinator(ctx, deps.Repos.BuzzRepository, notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to load buzz collection: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService, lgr)
	deps.FacultyService = appServices.NewFacultyService(deps.FacultyCoordinator, lgr)
	deps.BuzzService = appServices.NewBuzzService(deps.BuzzCoordinator, lgr)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProfileController = appControllers.NewProfileController(deps.AuthService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.BuzzController = appControllers.NewBuzzController(deps.BuzzService)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.FacultyController,
		deps.BuzzController,
		deps.InquiryController,
		deps.AuthMiddleware,
	)

	return router
}
