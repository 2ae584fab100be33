// Package catalogapi is a typed client for the external catalog REST API.
package catalogapi

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml ../../../../api/catalog-api.yaml

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog API error: %s", e.Status)
	}
	return fmt.Sprintf("catalog API error: %s: %s", e.Status, e.Body)
}

// Client wraps the generated CatalogAPIClient with helpers that return decoded payloads.
type Client struct {
	api *ClientWithResponses
}

// NewCatalogClient instantiates the catalog client with sane defaults. Outgoing requests
// are traced.
func NewCatalogClient(baseURL string, httpClient HttpRequestDoer) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("catalog API base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse catalog API base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	api, err := NewClientWithResponses(baseURL, WithHTTPClient(httpClient), WithRequestEditorFn(acceptJSON))
	if err != nil {
		return nil, fmt.Errorf("build catalog client: %w", err)
	}
	return &Client{api: api}, nil
}

func acceptJSON(_ context.Context, req *http.Request) error {
	req.Header.Set("Accept", "application/json")
	return nil
}

// ListProductos calls GET /productos.
func (c *Client) ListProductos(ctx context.Context) ([]Producto, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	resp, err := c.api.ListProductosWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("call catalog API: %w", err)
	}
	return decoded(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// ListCategorias calls GET /categorias.
func (c *Client) ListCategorias(ctx context.Context) ([]Categoria, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	resp, err := c.api.ListCategoriasWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("call catalog API: %w", err)
	}
	return decoded(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// ListPaises calls GET /paises.
func (c *Client) ListPaises(ctx context.Context) ([]Pais, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	resp, err := c.api.ListPaisesWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("call catalog API: %w", err)
	}
	return decoded(resp.HTTPResponse, resp.Body, resp.JSON200)
}

// CreateProducto calls POST /productos.
func (c *Client) CreateProducto(ctx context.Context, body Producto) error {
	if err := c.ensure(); err != nil {
		return err
	}
	resp, err := c.api.CreateProductoWithResponse(ctx, body)
	if err != nil {
		return fmt.Errorf("call catalog API: %w", err)
	}
	return checkStatus(resp.HTTPResponse, resp.Body)
}

// UpdateProducto calls PUT /productos/{idProducto}.
func (c *Client) UpdateProducto(ctx context.Context, idProducto int64, body Producto) error {
	if err := c.ensure(); err != nil {
		return err
	}
	resp, err := c.api.UpdateProductoWithResponse(ctx, idProducto, body)
	if err != nil {
		return fmt.Errorf("call catalog API: %w", err)
	}
	return checkStatus(resp.HTTPResponse, resp.Body)
}

// DeleteProducto calls DELETE /productos/{idProducto}.
func (c *Client) DeleteProducto(ctx context.Context, idProducto int64) error {
	if err := c.ensure(); err != nil {
		return err
	}
	resp, err := c.api.DeleteProductoWithResponse(ctx, idProducto)
	if err != nil {
		return fmt.Errorf("call catalog API: %w", err)
	}
	return checkStatus(resp.HTTPResponse, resp.Body)
}

func (c *Client) ensure() error {
	if c == nil || c.api == nil {
		return errors.New("catalog client not configured")
	}
	return nil
}

// checkStatus accepts any 2xx; mutations may answer without a body.
func checkStatus(resp *http.Response, body []byte) error {
	if resp == nil || resp.StatusCode == 0 {
		return errors.New("catalog API returned an empty response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(body))}
	}
	return nil
}

// decoded returns the JSON list of a 200 response. A 200 without a JSON content type
// yields nothing to decode and is reported.
func decoded[T any](resp *http.Response, body []byte, list *[]T) ([]T, error) {
	if err := checkStatus(resp, body); err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("catalog API answered %s without a JSON list", resp.Status)
	}
	return *list, nil
}
