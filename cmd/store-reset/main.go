// Command store-reset clears persisted collections so they are reseeded from the built-in
// defaults on next access. With no arguments it clears every collection key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/platform/migrations"
	platformpostgres "github.com/Apurer/huerto-store/internal/platform/postgres"
)

var collectionKeys = []string{
	localstore.KeyProducts,
	localstore.KeyCustomers,
	localstore.KeyOrders,
	localstore.KeyCart,
}

func main() {
	withToken := flag.Bool("token", false, "also revoke the back-office session token")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; nothing to reset")
	}
	if err := migrations.Run(db); err != nil {
		log.Fatalf("failed to migrate local store: %v", err)
	}

	keys, err := selectKeys(flag.Args(), *withToken)
	if err != nil {
		log.Fatal(err)
	}
	store := localstore.NewPostgres(db)
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			log.Fatalf("failed to reset %q: %v", key, err)
		}
		logger.Info("local store key reset", slog.String("key", key))
	}
	log.Printf("store reset completed")
}

// selectKeys validates explicit keys, defaulting to every collection.
func selectKeys(args []string, withToken bool) ([]string, error) {
	known := append(slices.Clone(collectionKeys), localstore.KeyToken)
	keys := args
	if len(keys) == 0 {
		keys = slices.Clone(collectionKeys)
	}
	for _, key := range keys {
		if !slices.Contains(known, key) {
			return nil, fmt.Errorf("unknown local store key %s", key)
		}
	}
	if withToken && !slices.Contains(keys, localstore.KeyToken) {
		keys = append(keys, localstore.KeyToken)
	}
	return keys, nil
}
