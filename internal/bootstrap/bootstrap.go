package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kerem/learnhub/docs" // Import generated swagger docs
	appControllers "github.com/kerem/learnhub/internal/app/controllers"
	appMigrations "github.com/kerem/learnhub/internal/app/migrations"
	appRepos "github.com/kerem/learnhub/internal/app/repositories"
	appRoutes "github.com/kerem/learnhub/internal/app/routes"
	appServices "github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/config"
	"github.com/kerem/learnhub/internal/db"
	appMiddleware "github.com/kerem/learnhub/internal/middleware"
	pkgAuth "github.com/kerem/learnhub/internal/pkg/auth"
	"github.com/kerem/learnhub/internal/pkg/filestorage"
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
	"github.com/kerem/learnhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger

	AuthController              *appControllers.AuthController
	CatalogController           *appControllers.CatalogController
	UserController              *appControllers.UserController
	AdminUserController         *appControllers.AdminUserController
	AdminInstructorController   *appControllers.AdminInstructorController
	AdminContentController      *appControllers.AdminContentController
	AdminSubscriptionController *appControllers.AdminSubscriptionController
	AdminAnalyticsController    *appControllers.AdminAnalyticsController
	InstructorCourseController  *appControllers.InstructorCourseController
	InstructorBlogController    *appControllers.InstructorBlogController
	InstructorProfileController *appControllers.InstructorProfileController
	AuthMiddleware              *appMiddleware.AuthMiddleware
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best effort, an existing database is not an error.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint.
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(dbPool, deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.CatalogController = appControllers.NewCatalogController(
		deps.Services.CourseService,
		deps.Services.BlogService,
		deps.Services.SubscriptionService,
	)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.AdminUserController = appControllers.NewAdminUserController(deps.Services.UserService)
	deps.AdminInstructorController = appControllers.NewAdminInstructorController(deps.Services.InstructorService)
	deps.AdminContentController = appControllers.NewAdminContentController(
		deps.Services.CourseService,
		deps.Services.BlogService,
		deps.Services.InstructorService,
	)
	deps.AdminSubscriptionController = appControllers.NewAdminSubscriptionController(deps.Services.SubscriptionService)
	deps.AdminAnalyticsController = appControllers.NewAdminAnalyticsController(deps.Services.AnalyticsService)
	deps.InstructorCourseController = appControllers.NewInstructorCourseController(deps.Services.CourseService)
	deps.InstructorBlogController = appControllers.NewInstructorBlogController(deps.Services.BlogService)
	deps.InstructorProfileController = appControllers.NewInstructorProfileController(deps.Services.InstructorService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.UserController,
		deps.AdminUserController,
		deps.AdminInstructorController,
		deps.AdminContentController,
		deps.AdminSubscriptionController,
		deps.AdminAnalyticsController,
		deps.InstructorCourseController,
		deps.InstructorBlogController,
		deps.InstructorProfileController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
