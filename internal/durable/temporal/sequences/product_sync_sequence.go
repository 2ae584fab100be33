package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	productactivities "github.com/Apurer/huerto-store/internal/durable/temporal/activities/products"
)

// RunProductSyncSequence executes the activities that mirror a product change.
func RunProductSyncSequence(ctx workflow.Context, cmd ports.SyncCommand) error {
	logger := workflow.GetLogger(ctx)
	productID := cmd.Product.ID
	logger.Info("product sync sequence started", "productId", productID, "action", string(cmd.Action))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, productactivities.PushProductActivityName, cmd).Get(ctx, nil); err != nil {
		logger.Error("product sync sequence failed", "productId", productID, "error", err)
		return err
	}
	logger.Info("product sync sequence completed", "productId", productID)
	return nil
}
