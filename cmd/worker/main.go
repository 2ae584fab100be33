package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/huerto-store/internal/clients/http/catalogapi"
	catalogremote "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/external/remote"
	catalogworkflows "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/workflows"
	productactivities "github.com/Apurer/huerto-store/internal/durable/temporal/activities/products"
	productworkflows "github.com/Apurer/huerto-store/internal/durable/temporal/workflows/products"
	platformobservability "github.com/Apurer/huerto-store/internal/platform/observability"
)

func main() {
	ctx := context.Background()
	const serviceName = "huerto-store-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	baseURL := strings.TrimSpace(os.Getenv("CATALOG_API_URL"))
	apiClient, err := catalogapi.NewCatalogClient(baseURL, nil)
	if err != nil {
		logger.Error("worker needs CATALOG_API_URL to mirror products", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// Activities call the catalog directly; scheduling workflows from them would loop.
	directSync := catalogworkflows.NewInlineCatalogSync(catalogremote.NewCatalog(apiClient))
	productActivities := productactivities.NewActivities(directSync)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, productworkflows.ProductSyncTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(productworkflows.ProductSyncWorkflow, workflow.RegisterOptions{Name: productworkflows.ProductSyncWorkflowName})
	w.RegisterActivityWithOptions(productActivities.PushProduct, activity.RegisterOptions{Name: productactivities.PushProductActivityName})

	logger.Info("worker listening",
		slog.String("taskQueue", productworkflows.ProductSyncTaskQueue),
		slog.String("namespace", clientOptions.Namespace),
		slog.String("catalogApi", baseURL),
	)
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
