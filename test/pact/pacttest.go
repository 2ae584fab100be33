//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// The storefront consumes the external catalog API and is itself consumed by the web client.
const (
	CatalogConsumerName = "huerto-store"
	CatalogProviderName = "catalog-api"

	StorefrontConsumerName = "huerto-web"
	StorefrontProviderName = "huerto-store-api"
)

const (
	StateCatalogBaseline = "catalog has products, categories and countries"
	StateProductExists   = "product with id 8 exists"
	StateProductMissing  = "no product with id 404"
	StateCartEmpty       = "the cart is empty"
)

const (
	ExistingProductID int64 = 8
	MissingProductID  int64 = 404

	ExistingProductName  = "Quinoa Orgánica"
	ExistingProductPrice = 12990
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for a consumer/provider pair.
func PactFile(t testing.TB, consumer, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), consumer+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload is the catalog API shape of the existing product.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"idProducto":          ExistingProductID,
		"nombreProducto":      ExistingProductName,
		"categoria":           map[string]any{"idCategoria": 3, "nombreCategoria": "Orgánicos"},
		"descripcionProducto": "Quinoa real en paquete de 1 kg.",
		"precioProducto":      ExistingProductPrice,
		"stockProducto":       45,
		"paisOrigen":          map[string]any{"idPais": 2, "nombre": "Perú"},
		"imagenUrl":           "/img/quinoa.jpg",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
