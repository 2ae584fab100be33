package ports

import (
	"context"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// SyncAction names the mutation mirrored to the external catalog.
type SyncAction string

const (
	SyncCreate SyncAction = "create"
	SyncUpdate SyncAction = "update"
	SyncDelete SyncAction = "delete"
)

// SyncCommand describes one committed change to mirror.
type SyncCommand struct {
	Action  SyncAction
	Product domain.Product
	Refs    domain.ProductRefs
}

// CatalogSync mirrors committed product changes to the external catalog.
type CatalogSync interface {
	Sync(ctx context.Context, cmd SyncCommand) error
}

// NoopCatalogSync is used when no external catalog is configured.
var NoopCatalogSync CatalogSync = noopCatalogSync{}

type noopCatalogSync struct{}

func (noopCatalogSync) Sync(context.Context, SyncCommand) error { return nil }
