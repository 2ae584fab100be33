package products

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
)

// PushProductActivityName mirrors one product change to the external catalog.
const PushProductActivityName = "catalog.activities.PushProduct"

// Activities groups activities that talk to the external catalog.
type Activities struct {
	sync ports.CatalogSync
}

// NewActivities wires the direct catalog sync into the Temporal activities bundle.
// sync must not itself schedule workflows.
func NewActivities(sync ports.CatalogSync) *Activities {
	return &Activities{sync: sync}
}

// PushProduct sends cmd to the external catalog.
func (a *Activities) PushProduct(ctx context.Context, cmd ports.SyncCommand) error {
	logger := activity.GetLogger(ctx)
	productID := cmd.Product.ID
	if a == nil || a.sync == nil {
		logger.Error("product push activity not initialized", "productId", productID)
		return errors.New("product push activity not initialized")
	}

	var hb pushHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.Completed {
		logger.Info("PushProduct already completed in prior attempt; skipping", "productId", productID)
		return nil
	}

	logger.Info("PushProduct activity started", "productId", productID, "action", string(cmd.Action))
	if err := a.sync.Sync(ctx, cmd); err != nil {
		logger.Error("PushProduct activity failed", "productId", productID, "error", err)
		return err
	}
	activity.RecordHeartbeat(ctx, pushHeartbeat{Completed: true})
	logger.Info("PushProduct activity completed", "productId", productID)
	return nil
}

type pushHeartbeat struct {
	Completed bool
}
