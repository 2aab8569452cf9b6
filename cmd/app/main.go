package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"booksamples/cmd"
	"booksamples/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := cmd.NewLogger(configs.LogLevel)
	entry := logrus.NewEntry(logger).WithField("service", "booksamples")

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, entry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := app.Install(ctx)
	if err != nil {
		log.Fatalf("install failed: %v", err)
	}
	entry.WithFields(logrus.Fields{
		"class_grades": len(result.ClassGrades),
		"warehouses":   result.Warehouses,
		"company":      result.Company,
	}).Info("install finished")

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		LogLevel:             os.Getenv("LOG_LEVEL"),
		FieldWarehouse:       os.Getenv("FIELD_WAREHOUSE"),
		AllowNegativeStock:   boolVariable("ALLOW_NEGATIVE_STOCK"),
		CompanyName:          os.Getenv("COMPANY_NAME"),
		CompanyAbbr:          os.Getenv("COMPANY_ABBR"),
		CustomerGroup:        os.Getenv("CUSTOMER_GROUP"),
		Territory:            os.Getenv("TERRITORY"),
		OverdueSweepSchedule: os.Getenv("OVERDUE_SWEEP_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func boolVariable(key string) bool {
	value := os.Getenv(key)
	if value == "" {
		return false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("%s must be a boolean, got %q", key, value)
	}
	return b
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
