// Package main provides the main entry point for the Smilemobilul campaign backend
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smilemobilul/campaign-backend/app/handlers"
	"github.com/smilemobilul/campaign-backend/app/middleware"
	"github.com/smilemobilul/campaign-backend/app/router"
	"github.com/smilemobilul/campaign-backend/app/services"
	businessflow "github.com/smilemobilul/campaign-backend/business_flow"
	"github.com/smilemobilul/campaign-backend/config"
	_ "github.com/smilemobilul/campaign-backend/docs"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/repository"
)

// Application holds the wired application components
type Application struct {
	router router.Router
	config *config.Config
}

// @title Smilemobilul Campaign API
// @version 1.0
// @description Campaign and service day scheduling API for partner companies
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("Starting campaign backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.router.Start(cfg.Server.Address()); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging routes the standard logger to a rotating file when one is
// configured, while keeping stderr output for local runs.
func setupLogging(cfg config.LoggingConfig) {
	if cfg.FilePath == "" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// runMigrations creates or updates the schema for all models
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Campaign{},
		&models.ServiceDay{},
		&models.User{},
	)
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.Config) (*Application, error) {
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	companyRepo := repository.NewCompanyRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	serviceDayRepo := repository.NewServiceDayRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Business flows
	companyFlow := businessflow.NewCompanyFlow(companyRepo)
	campaignFlow := businessflow.NewCampaignFlow(campaignRepo, companyRepo, db)
	serviceDayFlow := businessflow.NewServiceDayFlow(serviceDayRepo, campaignRepo, db)
	authFlow := businessflow.NewAuthFlow(userRepo, tokenService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authFlow)
	companyHandler := handlers.NewCompanyHandler(companyFlow)
	campaignHandler := handlers.NewCampaignHandler(campaignFlow)
	serviceDayHandler := handlers.NewServiceDayHandler(serviceDayFlow)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewFiberRouter(
		authHandler,
		companyHandler,
		campaignHandler,
		serviceDayHandler,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Application{
		router: r,
		config: cfg,
	}, nil
}
