package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"applemart/cmd"
	adapterhttp "applemart/internal/adapters/in/http"
	"applemart/internal/core/application/usecases/commands"
	"applemart/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	// Load the order collection before serving any reads.
	refreshHandler := app.CreateRefreshOrdersCommandHandler()
	if err := refreshHandler.Handle(context.Background(), commands.NewRefreshOrdersCommand()); err != nil {
		log.Fatalf("Initial order refresh failed: %v", err)
	}

	jobManager := app.CreateJobManager(jobs.Schedules{
		OrderRefresh:     configs.OrderRefreshSchedule,
		NotificationPoll: configs.NotificationPollSchedule,
	})
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		APIBaseURL:               goDotEnvVariable("API_BASE_URL"),
		APITimeoutSeconds:        goDotEnvVariable("API_TIMEOUT_SECONDS"),
		TokenFile:                goDotEnvVariable("TOKEN_FILE"),
		OrderRefreshSchedule:     goDotEnvVariable("ORDER_REFRESH_SCHEDULE"),
		NotificationPollSchedule: goDotEnvVariable("NOTIFICATION_POLL_SCHEDULE"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateRefreshOrdersCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetShippersQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
