package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	productworkflows "github.com/Apurer/huerto-store/internal/durable/temporal/workflows/products"
)

var (
	_ ports.CatalogSync = (*TemporalCatalogSync)(nil)
	_ ports.CatalogSync = (*InlineCatalogSync)(nil)
)

// TemporalCatalogSync starts the product sync workflow on a Temporal cluster and returns
// once it is scheduled; retries happen in the worker.
type TemporalCatalogSync struct {
	client    client.Client
	taskQueue string
}

// NewTemporalCatalogSync wires a Temporal client into the orchestrator.
func NewTemporalCatalogSync(c client.Client) *TemporalCatalogSync {
	return &TemporalCatalogSync{client: c, taskQueue: productworkflows.ProductSyncTaskQueue}
}

// Sync schedules the durable mirror of cmd.
func (o *TemporalCatalogSync) Sync(ctx context.Context, cmd ports.SyncCommand) error {
	if o == nil || o.client == nil {
		return errors.New("temporal catalog sync not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        buildProductSyncWorkflowID(cmd, traceComponent),
		TaskQueue: o.taskQueue,
	}
	_, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		productworkflows.ProductSyncWorkflowName,
		productworkflows.ProductSyncWorkflowInput{Command: cmd, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil
		}
		return fmt.Errorf("start product sync workflow: %w", err)
	}
	return nil
}

// InlineCatalogSync calls the external catalog directly, useful for tests or dev fallbacks.
type InlineCatalogSync struct {
	remote ports.RemoteCatalog
}

// NewInlineCatalogSync wraps the remote catalog for synchronous mirroring.
func NewInlineCatalogSync(remote ports.RemoteCatalog) *InlineCatalogSync {
	return &InlineCatalogSync{remote: remote}
}

// Sync pushes cmd to the external catalog.
func (o *InlineCatalogSync) Sync(ctx context.Context, cmd ports.SyncCommand) error {
	if o == nil || o.remote == nil {
		return errors.New("inline catalog sync not configured")
	}
	switch cmd.Action {
	case ports.SyncCreate:
		return o.remote.CreateProduct(ctx, cmd.Product, cmd.Refs)
	case ports.SyncUpdate:
		return o.remote.UpdateProduct(ctx, cmd.Product, cmd.Refs)
	case ports.SyncDelete:
		return o.remote.DeleteProduct(ctx, cmd.Product.ID)
	default:
		return fmt.Errorf("unknown sync action %q", cmd.Action)
	}
}

func buildProductSyncWorkflowID(cmd ports.SyncCommand, traceComponent string) string {
	return fmt.Sprintf("product-sync-%s-%d-%s", cmd.Action, cmd.Product.ID, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
