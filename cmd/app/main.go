package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"mailroom/cmd"
	"mailroom/internal/adapters/out/objectstorage"
	"mailroom/internal/adapters/out/postgres/allocationrepo"
	"mailroom/internal/adapters/out/postgres/lockerrepo"
	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/adapters/out/postgres/siterepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	storage := openObjectStorage(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, storage, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		StorageEndpoint:  goDotEnvVariable("STORAGE_ENDPOINT"),
		StorageAccessKey: goDotEnvVariable("STORAGE_ACCESS_KEY"),
		StorageSecretKey: goDotEnvVariable("STORAGE_SECRET_KEY"),
		StorageBucket:    goDotEnvVariable("STORAGE_BUCKET"),
		StorageUseSSL:    envBool("STORAGE_USE_SSL", false),

		CapacityCacheTTL:  envDuration("CAPACITY_CACHE_TTL", 30*time.Second),
		ReconcileSchedule: envDefault("RECONCILE_SCHEDULE", "*/5 * * * *"),

		EnforceReleasePrecondition: envBool("ENFORCE_RELEASE_PRECONDITION", false),
		RequireArchiveBeforePurge:  envBool("REQUIRE_ARCHIVE_BEFORE_PURGE", false),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envDefault(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %v", key, err)
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return v
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&siterepo.SiteDTO{},
		&lockerrepo.LockerDTO{},
		&allocationrepo.AllocationDTO{},
		&parcelrepo.ParcelDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func openObjectStorage(configs cmd.Config) *objectstorage.MinioStorage {
	storage, err := objectstorage.NewMinioStorage(
		configs.StorageEndpoint,
		configs.StorageAccessKey,
		configs.StorageSecretKey,
		configs.StorageBucket,
		configs.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}

	if err := storage.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("Failed to prepare evidence bucket: %v", err)
	}

	return storage
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
