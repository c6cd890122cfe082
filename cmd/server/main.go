package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"panchayat.backend/internal/config"
	"panchayat.backend/internal/infrastructure/cache"
	"panchayat.backend/internal/infrastructure/datasources/postgres"
	"panchayat.backend/internal/infrastructure/notify"
	"panchayat.backend/internal/infrastructure/repositories"
	"panchayat.backend/internal/interfaces/http/handlers"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/internal/usecases"
	"panchayat.backend/pkg/crypto"
	"panchayat.backend/pkg/jwt"
	"panchayat.backend/pkg/logger"
	"panchayat.backend/pkg/metrics"
	"panchayat.backend/pkg/redis"
)

const serviceName = "panchayat-backend"

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	migrateDB  = postgres.Migrate
	newNotify  = notify.New
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := migrateDB(ctx, db); err != nil {
			return err
		}
		logger.Info(ctx, "Schema migrated")
	}

	notifier, err := newNotify(cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to initialize notifier: %w", err)
	}

	r := newRouter(cfg, db, notifier)

	logger.Info(ctx, "Panchayat backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// newRouter wires repositories, usecases and handlers over db and returns the
// complete engine.
func newRouter(cfg *config.Config, db *gorm.DB, notifier notify.Notifier) *gin.Engine {
	m := metrics.New()

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	familyRepo := repositories.NewFamilyRepository(db)
	issueRepo := repositories.NewIssueRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	financialRepo := repositories.NewFinancialDataRepository(db)
	schemeRepo := repositories.NewWelfareSchemeRepository(db)
	enrolRepo := repositories.NewWelfareEnrolRepository(db)
	infraRepo := repositories.NewInfrastructureRepository(db)
	envRepo := repositories.NewEnvironmentalDataRepository(db)
	uow := repositories.NewUnitOfWork(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	hasher := crypto.NewPasswordHasher(cfg.Security.BcryptCost)
	identities := cache.NewIdentityCache(cfg.Cache.ActorTTL)

	authUsecase := usecases.NewAuthUsecase(uow, userRepo, profileRepo, jwtService, hasher, redis.NewRevocationStore(), identities, m)
	adminUsecase := usecases.NewAdminUsecase(uow, userRepo, profileRepo, activityRepo, usecases.OwnedRecordRepositories{
		Assets:         assetRepo,
		Families:       familyRepo,
		Issues:         issueRepo,
		Documents:      documentRepo,
		Financial:      financialRepo,
		Enrolments:     enrolRepo,
		Schemes:        schemeRepo,
		Infrastructure: infraRepo,
	}, notifier, identities, m)
	profileUsecase := usecases.NewProfileUsecase(uow, profileRepo, activityRepo, identities)
	assetUsecase := usecases.NewAssetUsecase(uow, assetRepo, profileRepo)
	familyUsecase := usecases.NewFamilyUsecase(uow, familyRepo, profileRepo)
	issueUsecase := usecases.NewIssueUsecase(uow, issueRepo, profileRepo, activityRepo)
	documentUsecase := usecases.NewDocumentUsecase(documentRepo, profileRepo)
	financialUsecase := usecases.NewFinancialUsecase(financialRepo, profileRepo)
	welfareUsecase := usecases.NewWelfareUsecase(uow, schemeRepo, enrolRepo, profileRepo, activityRepo)
	infraUsecase := usecases.NewInfrastructureUsecase(uow, infraRepo, profileRepo, activityRepo)
	envUsecase := usecases.NewEnvironmentUsecase(envRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r, cfg.Server.CORSAllowedOrigins)
	registerHealthRoute(r, cfg.Server.Version)
	registerMetricsRoute(r, m)
	registerAPIV1Routes(r, routeDeps{
		authHandler:  handlers.NewAuthHandler(authUsecase),
		adminHandler: handlers.NewAdminHandler(adminUsecase),
		citizenHandler: handlers.NewCitizenHandler(handlers.CitizenDeps{
			Profiles:       profileUsecase,
			Assets:         assetUsecase,
			Families:       familyUsecase,
			Issues:         issueUsecase,
			Documents:      documentUsecase,
			Financial:      financialUsecase,
			Welfare:        welfareUsecase,
			Infrastructure: infraUsecase,
		}),
		agencyHandler: handlers.NewAgencyHandler(welfareUsecase, infraUsecase),
		employeeHandler: handlers.NewEmployeeHandler(handlers.EmployeeDeps{
			Assets:         assetUsecase,
			Families:       familyUsecase,
			Issues:         issueUsecase,
			Documents:      documentUsecase,
			Financial:      financialUsecase,
			Enrolments:     welfareUsecase,
			Infrastructure: infraUsecase,
			Environment:    envUsecase,
		}),
		authMiddleware: middleware.AuthMiddleware(authUsecase),
	})
	return r
}
