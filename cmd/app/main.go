package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"serviceops/cmd"
	adapterhttp "serviceops/internal/adapters/in/http"
	"serviceops/internal/adapters/out/postgres/evidencerepo"
	"serviceops/internal/adapters/out/postgres/inventory"
	"serviceops/internal/adapters/out/postgres/serviceorderrepo"
	"serviceops/internal/adapters/out/postgres/surveyrepo"
	"serviceops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateSendSurveyRemindersCommandHandler(),
		configs.SurveyReminderSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		SideEffectTimeout:            durationEnvVariable("SIDE_EFFECT_TIMEOUT", 5*time.Second),
		RequirePurchaseOrderDocument: boolEnvVariable("REQUIRE_PURCHASE_ORDER_DOCUMENT"),
		SurveyReminderSchedule:       goDotEnvVariable("SURVEY_REMINDER_SCHEDULE"),
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

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func boolEnvVariable(key string) bool {
	value := goDotEnvVariable(key)
	if value == "" {
		return false
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&serviceorderrepo.ServiceOrderDTO{},
		&evidencerepo.EvidenceDTO{},
		&surveyrepo.SurveyDTO{},
		&inventory.PartDTO{},
		&inventory.OrderPartDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = gormDB.Exec("CREATE SEQUENCE IF NOT EXISTS service_order_sequence").Error; err != nil {
		log.Fatalf("Error creating order number sequence: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateServiceOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateAssignTechnicianCommandHandler(),
		app.CreateSetPhysicalOrderNumberCommandHandler(),
		app.CreateAddEvidenceCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
