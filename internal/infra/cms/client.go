// Package cms implements the remote CMS product catalog client.
package cms

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"gear-catalog-service/internal/domain"
)

// ProductsEndpoint is the API path for the product collection.
const ProductsEndpoint = "/items/products"

// HealthEndpoint is the CMS server health path.
const HealthEndpoint = "/server/health"

// Config holds CMS client configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	CB      CBConfig
}

// CBConfig holds circuit breaker settings.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.ProductSource against a Directus-style CMS.
// Each request carries bearer authentication and an explicit no-store
// cache directive: every invocation must reflect current remote state.
// Failed listings are not retried here; retry policy belongs to callers.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a CMS client from explicit configuration. There is no
// package-level singleton; callers construct and inject the client.
func New(cfg Config, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Cache-Control", "no-store")

	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &Client{
		client: client,
		cb:     newCircuitBreaker("cms", cfg.CB),
		logger: logger,
	}
}

// newCircuitBreaker builds the breaker guarding the CMS endpoint.
func newCircuitBreaker(name string, cfg CBConfig) *gobreaker.CircuitBreaker[*resty.Response] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.FailureRatio
		},
	}

	return gobreaker.NewCircuitBreaker[*resty.Response](settings)
}

// ListProducts fetches product records, newest first, applying the given
// filter. An empty status restricts the listing to "fetched" records.
func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	status := filter.Status
	if status == "" {
		status = string(domain.ProductStatusFetched)
	}

	params := map[string]string{
		"filter[status][_eq]": status,
		"sort":                "-date_created",
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}
	if filter.Offset > 0 {
		params["offset"] = strconv.Itoa(filter.Offset)
	}

	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		var result ProductsResponse
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(&result).
			Get(ProductsEndpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, &domain.RemoteServiceError{
				Status:  r.StatusCode(),
				Message: r.Status(),
			}
		}

		return r, nil
	})

	if err != nil {
		c.logger.Warn("cms product listing failed",
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, asRemoteServiceError(err)
	}

	result := resp.Result().(*ProductsResponse)
	products := make([]domain.Product, 0, len(result.Data))
	for _, rec := range result.Data {
		products = append(products, rec.ToDomain())
	}

	c.logger.Info("cms product listing completed",
		zap.Int("count", len(products)),
		zap.String("status", status),
	)

	return products, nil
}

// GetProductByASIN performs a single-item filtered lookup. Any failure is
// logged and swallowed to a nil result: this path serves non-critical
// lookups and must never propagate remote faults.
func (c *Client) GetProductByASIN(ctx context.Context, asin string) (*domain.Product, error) {
	var result ProductsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("filter[asin][_eq]", asin).
		SetQueryParam("limit", "1").
		SetResult(&result).
		Get(ProductsEndpoint)

	if err != nil || resp.IsError() {
		if err == nil {
			err = &domain.RemoteServiceError{Status: resp.StatusCode(), Message: resp.Status()}
		}
		c.logger.Warn("cms product lookup failed",
			zap.String("asin", asin),
			zap.Error(err),
		)

		return nil, nil
	}

	if len(result.Data) == 0 {
		return nil, nil
	}

	product := result.Data[0].ToDomain()

	return &product, nil
}

// HealthCheck verifies the CMS is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(HealthEndpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &domain.RemoteServiceError{Status: resp.StatusCode(), Message: resp.Status()}
	}

	return nil
}

// asRemoteServiceError normalizes breaker and transport failures into the
// typed remote error the aggregation layer downgrades on.
func asRemoteServiceError(err error) error {
	var remoteErr *domain.RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}

	return &domain.RemoteServiceError{Message: err.Error()}
}
