package main

import (
	"fmt"
	"log/slog"
	"os"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	events := connectPublisher(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, events)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateCountUncompletedOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// connectPublisher dials RabbitMQ when a URL is configured. The publisher is
// optional: orders flow without it, only the events are skipped.
func connectPublisher(configs cmd.Config) ports.OrderEventPublisher {
	if configs.RabbitMQURL == "" {
		return nil
	}

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL)
	if err != nil {
		log.Warnf("RabbitMQ unavailable, order events disabled: %v", err)
		return nil
	}
	return publisher
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateAddToCartCommandHandler(),
		app.CreateUpdateCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignShopCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateMarkShopPaidCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateNearestShopsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
