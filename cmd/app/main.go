package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farmaya/cmd"
	httpin "farmaya/internal/adapters/in/http"
	"farmaya/internal/adapters/out/filestore"
	"farmaya/internal/adapters/out/postgres/orderrepo"
	"farmaya/internal/adapters/out/postgres/productrepo"
	"farmaya/internal/adapters/out/postgres/userrepo"
	"farmaya/internal/jobs"
)

const (
	defaultReminderMaxAge = 4 * time.Hour
	defaultSessionTTL     = 30 * 24 * time.Hour
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	fileStore, err := filestore.NewDiskFileStore(configs.MediaDir)
	if err != nil {
		log.Fatalf("Failed to prepare media directory: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		gormDB,
		configs.PrescriptionReminderMaxAge,
		configs.SessionTTL,
		slog.Default(),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreateLoginCommandHandler(),
		root.CreateCreateProductCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateReviewPrescriptionCommandHandler(),
		root.CreateResubmitPrescriptionCommandHandler(fileStore),
		root.CreateAcknowledgeRejectionCommandHandler(),
		root.CreateClaimOrderCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateGetProductsQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetPharmacyOrdersQueryHandler(),
		root.CreateGetCourierOrdersQueryHandler(),
		root.CreateGetAvailableOrdersQueryHandler(),
		fileStore,
		root.CreateSessionRepository(),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	e.Static("/media", fileStore.Root())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:                   envOrDefault("HTTP_PORT", "8080"),
		DBHost:                     envOrDefault("DB_HOST", "localhost"),
		DBPort:                     envOrDefault("DB_PORT", "5432"),
		DBUser:                     os.Getenv("DB_USER"),
		DBPassword:                 os.Getenv("DB_PASSWORD"),
		DBName:                     os.Getenv("DB_NAME"),
		DBSslMode:                  envOrDefault("DB_SSLMODE", "disable"),
		MediaDir:                   envOrDefault("MEDIA_DIR", "media"),
		RestockOnCancel:            os.Getenv("RESTOCK_ON_CANCEL") == "true",
		PrescriptionReminderMaxAge: durationOrDefault("PRESCRIPTION_REMINDER_MAX_AGE", defaultReminderMaxAge),
		SessionTTL:                 durationOrDefault("SESSION_TTL", defaultSessionTTL),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	// TranslateError maps unique constraint violations to
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.SessionDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.RejectionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}
