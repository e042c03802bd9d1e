package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"applemart/internal/adapters/out/applemartapi"
	"applemart/internal/adapters/out/memstore"
	"applemart/internal/adapters/out/tokenstore"
	"applemart/internal/core/application/usecases/commands"
	"applemart/internal/core/application/usecases/queries"
	"applemart/internal/jobs"
)

type CompositionRoot struct {
	client *applemartapi.Client
	store  *memstore.OrderStore
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := tokenstore.NewFileTokenStore(config.TokenFile, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	timeout := 15 * time.Second
	if seconds, convErr := strconv.Atoi(config.APITimeoutSeconds); convErr == nil && seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	client, err := applemartapi.NewClient(config.APIBaseURL, timeout, tokens, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		client: client,
		store:  memstore.NewOrderStore(),
		logger: logger,
	}, nil
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateRefreshOrdersCommandHandler() commands.RefreshOrdersCommandHandler {
	return commands.NewRefreshOrdersCommandHandler(c.client, c.store)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.client)
}

func (c *CompositionRoot) CreateGetShippersQueryHandler() queries.GetShippersQueryHandler {
	return queries.NewGetShippersQueryHandler(c.client)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.client)
}

func (c *CompositionRoot) CreateJobManager(schedules jobs.Schedules) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshOrdersCommandHandler(),
		c.CreateGetNotificationsQueryHandler(),
		schedules,
		c.logger,
	)
}
