package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	goredis "github.com/redis/go-redis/v9"

	"github.com/nttbank/account-service/internal/adapters/clients/httpclient"
	"github.com/nttbank/account-service/internal/adapters/events"
	portsevents "github.com/nttbank/account-service/internal/core/ports/events"
	portsrepo "github.com/nttbank/account-service/internal/core/ports/repositories"
	"github.com/nttbank/account-service/internal/core/services"
	"github.com/nttbank/account-service/internal/platform/config"
	"github.com/nttbank/account-service/internal/repositories/cache"
	"github.com/nttbank/account-service/internal/repositories/database/pgsql"
	"github.com/nttbank/account-service/internal/repositories/memory"
)

const eventStreamMaxLen = 100000

// runMigrations applies every pending "up" migration through a temporary database/sql connection.
func runMigrations(databaseURL, migrationsPath string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newRepositories picks the postgres store when a pool exists, the in-memory store otherwise,
// and puts the redis read-through cache in front when redis is configured.
func newRepositories(dbPool *pgxpool.Pool, redisClient *goredis.Client, cfg *config.Config, logger *slog.Logger) portsrepo.RepositoryProvider {
	var repos portsrepo.RepositoryProvider
	if dbPool != nil {
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Warn("Using in-memory account store; data is lost on restart")
		repos = memory.NewRepositoryProvider()
	}

	if redisClient != nil && cfg.CacheTTL > 0 {
		repos = cache.Wrap(repos, redisClient, cfg.CacheTTL)
	}
	return repos
}

// newCollaborators builds the HTTP adapters for the customer, credit and transaction services.
func newCollaborators(ctx context.Context, cfg *config.Config) (services.Collaborators, error) {
	auth := httpclient.AuthConfig{
		Mode:            cfg.ClientAuthMode,
		TokenURL:        cfg.ClientOAuthTokenURL,
		ClientID:        cfg.ClientOAuthClientID,
		ClientSecret:    cfg.ClientOAuthClientSecret,
		Scopes:          cfg.ClientOAuthScopes,
		CredentialsFile: cfg.ClientGoogleCredentialsFile,
	}

	options := func(baseURL string) (httpclient.Options, error) {
		client, err := httpclient.NewHTTPClient(ctx, auth, baseURL, cfg.ClientTimeout)
		if err != nil {
			return httpclient.Options{}, fmt.Errorf("http client for %s: %w", baseURL, err)
		}
		return httpclient.Options{
			HTTPClient:   client,
			MaxRetries:   cfg.ClientMaxRetries,
			RetryBackoff: cfg.ClientRetryBackoff,
		}, nil
	}

	customerOpts, err := options(cfg.CustomerServiceURL)
	if err != nil {
		return services.Collaborators{}, err
	}
	creditOpts, err := options(cfg.CreditServiceURL)
	if err != nil {
		return services.Collaborators{}, err
	}
	transactionOpts, err := options(cfg.TransactionServiceURL)
	if err != nil {
		return services.Collaborators{}, err
	}

	return services.Collaborators{
		Customers:    httpclient.NewCustomerClient(cfg.CustomerServiceURL, customerOpts),
		Credits:      httpclient.NewCreditClient(cfg.CreditServiceURL, creditOpts),
		Transactions: httpclient.NewTransactionClient(cfg.TransactionServiceURL, transactionOpts),
	}, nil
}

func newPublisher(cfg *config.Config, redisClient *goredis.Client) (portsevents.Publisher, error) {
	switch cfg.EventsBackend {
	case config.EventsRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis events backend needs a redis connection")
		}
		return events.NewRedisStreamPublisher(redisClient, cfg.EventsStream, eventStreamMaxLen), nil
	case config.EventsKafka:
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return events.NoopPublisher{}, nil
	}
}
