package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	storefrontserver "github.com/Apurer/huerto-store/go"
	"github.com/Apurer/huerto-store/internal/clients/http/catalogapi"
	cartobs "github.com/Apurer/huerto-store/internal/domains/cart/adapters/observability"
	cartapp "github.com/Apurer/huerto-store/internal/domains/cart/application"
	catalogremote "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/external/remote"
	catalogobs "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/observability"
	catalogworkflows "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/workflows"
	catalogapp "github.com/Apurer/huerto-store/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	customersobs "github.com/Apurer/huerto-store/internal/domains/customers/adapters/observability"
	customersapp "github.com/Apurer/huerto-store/internal/domains/customers/application"
	ordersobs "github.com/Apurer/huerto-store/internal/domains/orders/adapters/observability"
	ordersapp "github.com/Apurer/huerto-store/internal/domains/orders/application"
	sessionsapp "github.com/Apurer/huerto-store/internal/domains/sessions/application"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/platform/migrations"
	platformobservability "github.com/Apurer/huerto-store/internal/platform/observability"
	platformpostgres "github.com/Apurer/huerto-store/internal/platform/postgres"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

// Run boots the storefront HTTP API with observability, storage and catalog sync wired.
func Run(ctx context.Context) error {
	const serviceName = "huerto-store-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	store, cleanupStore := buildLocalStore(ctx, cfg, logger)
	defer cleanupStore()

	remote, err := buildRemoteCatalog(cfg)
	if err != nil {
		return err
	}
	lookups := catalogapp.NewLookups(remote, logger)
	if remote != nil {
		go lookups.Load(context.WithoutCancel(ctx))
	} else {
		logger.Warn("CATALOG_API_URL not set, using built-in catalog without lookups or sync")
	}

	catalogSync, closeSync := buildCatalogSync(cfg, remote, instruments)
	defer closeSync()

	coreCatalog := catalogapp.NewService(store,
		catalogapp.WithLookups(lookups),
		catalogapp.WithCatalogSync(catalogSync),
		catalogapp.WithLogger(logger),
	)
	catalogService := catalogobs.New(
		coreCatalog,
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	coreCustomers := customersapp.NewService(store,
		customersapp.WithCountrySource(func() []string { return lookupNames(lookups.Countries()) }),
		customersapp.WithLogger(logger),
	)
	customerService := customersobs.New(
		coreCustomers,
		customersobs.WithLogger(logger),
		customersobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customersobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	orderService := ordersobs.New(
		ordersapp.NewService(store),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
	)
	cartService := cartobs.New(
		cartapp.NewService(store, catalogService, cartapp.WithLogger(logger)),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)
	sessionService := sessionsapp.NewService(store,
		sessionsapp.WithRevokeHook(coreCatalog.DropEditor),
		sessionsapp.WithRevokeHook(coreCustomers.DropEditor),
	)
	formatter := table.NewFormatter(cfg.CurrencyLocale)
	var sessionOpts []storefrontserver.SessionOption
	if cfg.SessionIssueDisabled {
		sessionOpts = append(sessionOpts, storefrontserver.WithIssueDisabled())
	}

	handlers := storefrontserver.ApiHandleFunctions{
		StorefrontAPI:     storefrontserver.NewStorefrontAPI(catalogService, cartService, lookups),
		CartAPI:           storefrontserver.NewCartAPI(cartService, formatter),
		SessionAPI:        storefrontserver.NewSessionAPI(sessionService, sessionOpts...),
		AdminProductsAPI:  storefrontserver.NewAdminProductsAPI(catalogService, lookups, formatter),
		AdminCustomersAPI: storefrontserver.NewAdminCustomersAPI(customerService),
		AdminOrdersAPI:    storefrontserver.NewAdminOrdersAPI(orderService, formatter),
		RequireSession:    storefrontserver.RequireSession(sessionService),
	}

	router := storefrontserver.NewRouter(handlers, otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildLocalStore prefers Postgres and falls back to process memory.
func buildLocalStore(ctx context.Context, cfg Config, logger *slog.Logger) (localstore.Store, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory local store")
		return localstore.NewMemory(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return localstore.NewMemory(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return localstore.NewMemory(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		_ = sqlDB.Close()
		logger.Warn("failed to migrate local store, falling back to memory", slog.String("error", err.Error()))
		return localstore.NewMemory(), func() {}
	}
	logger.Info("local store configured with postgres")
	return localstore.NewPostgres(db), func() { _ = sqlDB.Close() }
}

// buildRemoteCatalog returns nil when no catalog API is configured.
func buildRemoteCatalog(cfg Config) (catalogports.RemoteCatalog, error) {
	if !cfg.SyncEnabled() {
		return nil, nil
	}
	apiClient, err := catalogapi.NewCatalogClient(cfg.CatalogAPIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog API client: %w", err)
	}
	return catalogremote.NewCatalog(apiClient), nil
}

// buildCatalogSync mirrors commits through Temporal when a cluster is reachable and
// directly otherwise.
func buildCatalogSync(cfg Config, remote catalogports.RemoteCatalog, instruments *platformobservability.Instruments) (catalogports.CatalogSync, func()) {
	logger := effectiveLogger(instruments)
	if remote == nil {
		return catalogports.NoopCatalogSync, func() {}
	}
	temporalClient, err := connectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, mirroring catalog inline", slog.String("error", err.Error()))
		return catalogworkflows.NewInlineCatalogSync(remote), func() {}
	}
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	return catalogworkflows.NewTemporalCatalogSync(temporalClient), temporalClient.Close
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func lookupNames(lookups []catalogdomain.Lookup) []string {
	names := make([]string, 0, len(lookups))
	for _, l := range lookups {
		names = append(names, l.Name)
	}
	return names
}
