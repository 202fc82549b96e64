// Package catalog integrates the external product catalog: an HTTP client
// fetching the product collection and an enricher attaching catalog
// attributes to validated transactions.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sales-analytics/internal/logging"
	"sales-analytics/internal/pipeerror"
)

// Product holds the catalog attributes attached during enrichment.
type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Category string  `json:"category" yaml:"category"`
	Brand    string  `json:"brand" yaml:"brand"`
	Rating   float64 `json:"rating" yaml:"rating"`
}

// Mapping maps a numeric product identifier to its catalog attributes.
type Mapping map[int]Product

// productsPayload mirrors the catalog response body.
type productsPayload struct {
	Products []Product `json:"products"`
}

// Client fetches the product collection from the catalog service.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
	log        logging.Logger
}

// NewClient creates a catalog client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration, limit int, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

// FetchProducts retrieves the product collection and returns it as a mapping
// from numeric id to attributes. Any failure (network error, non-success
// status, malformed payload) returns a *pipeerror.CatalogUnavailableError;
// the caller degrades to a cached or empty mapping rather than aborting.
func (c *Client) FetchProducts(ctx context.Context) (Mapping, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)
	c.log.Info("Fetching product catalog", logging.Field{Key: logging.FieldURL, Value: url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &pipeerror.CatalogUnavailableError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &pipeerror.CatalogUnavailableError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WithError(err).Warn("Failed to close catalog response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &pipeerror.CatalogUnavailableError{
			URL: url,
			Err: fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pipeerror.CatalogUnavailableError{URL: url, Err: err}
	}

	var payload productsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &pipeerror.CatalogUnavailableError{URL: url, Err: err}
	}

	mapping := make(Mapping, len(payload.Products))
	for _, product := range payload.Products {
		mapping[product.ID] = product
	}

	c.log.Info("Fetched product catalog",
		logging.Field{Key: logging.FieldCount, Value: len(mapping)})
	return mapping, nil
}
