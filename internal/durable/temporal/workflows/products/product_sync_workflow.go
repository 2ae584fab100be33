package products

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	"github.com/Apurer/huerto-store/internal/durable/temporal/sequences"
)

const (
	// ProductSyncWorkflowName is the public identifier for registering the workflow.
	ProductSyncWorkflowName = "catalog.workflows.ProductSync"
	// ProductSyncTaskQueue is the queue consumed by the worker mirroring product changes.
	ProductSyncTaskQueue = "CATALOG_SYNC"
)

// ProductSyncWorkflowInput captures a committed product change to mirror.
type ProductSyncWorkflowInput struct {
	Command ports.SyncCommand
	TraceID string
}

// ProductSyncWorkflow pushes one committed change to the external catalog.
func ProductSyncWorkflow(ctx workflow.Context, input ProductSyncWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	productID := input.Command.Product.ID
	action := string(input.Command.Action)
	logger.Info("ProductSyncWorkflow started", withTraceID(input.TraceID, "productId", productID, "action", action)...)
	if err := sequences.RunProductSyncSequence(ctx, input.Command); err != nil {
		logger.Error("ProductSyncWorkflow failed", withTraceID(input.TraceID, "productId", productID, "action", action, "error", err)...)
		return err
	}
	logger.Info("ProductSyncWorkflow completed", withTraceID(input.TraceID, "productId", productID, "action", action)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
