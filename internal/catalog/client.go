package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/afkcodes/storefront/internal/domain"
)

// Config holds catalog client configuration.
type Config struct {
	// BaseURL is the catalog API root, e.g. "https://dummyjson.com".
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// MaxRetries is the number of retries after a failed attempt.
	MaxRetries int

	// RetryWaitMin and RetryWaitMax bound the exponential backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// DefaultConfig returns sensible defaults for the catalog client.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      10 * time.Second,
		MaxRetries:   2,
		RetryWaitMin: 250 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

// Client issues read-only requests against the remote product catalog.
// Requests retry transient failures with capped exponential backoff and run
// through a circuit breaker that treats 5xx responses as failures, so a
// struggling catalog is not hammered by every screen refresh.
type Client struct {
	cfg     Config
	hc      *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
}

// NewClient creates a catalog client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "catalog",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		// 4xx responses are the catalog answering normally (unknown product,
		// bad query); only transport failures and 5xx should trip the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var statusErr *statusError
			return errors.As(err, &statusErr) && statusErr.code < 500
		},
	}

	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
	}
}

// Products fetches one page of the catalog listing.
func (c *Client) Products(ctx context.Context, limit, skip int) (*domain.ProductPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	var page domain.ProductPage
	if err := c.getJSON(ctx, "/products", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Search fetches products matching a free-text query.
func (c *Client) Search(ctx context.Context, term string) (*domain.ProductPage, error) {
	query := url.Values{}
	query.Set("q", term)

	var page domain.ProductPage
	if err := c.getJSON(ctx, "/products/search", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product fetches a single product by catalog ID.
func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories fetches the catalog category list.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// getJSON runs a GET through the breaker and decodes the response body.
// A 404 maps to ENOTFOUND; every other failure, including a decode error,
// maps to EUNAVAILABLE so the client can offer a retry.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	op := "catalog.get " + path

	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.get(ctx, u)
	})
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound {
			return domain.NotFound(op, "catalog resource", path)
		}
		return domain.Unavailable(err, op, "The product catalog is unavailable. Please try again.")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return domain.Unavailable(err, op, "The product catalog returned an unexpected response.")
	}
	return nil
}

// get performs a single GET with retries. Network errors and 5xx responses
// are retried; 4xx responses are returned immediately since retrying them
// cannot help.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.cfg.RetryWaitMin * time.Duration(1<<uint(attempt-1))
			if wait > c.cfg.RetryWaitMax {
				wait = c.cfg.RetryWaitMax
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.getOnce(ctx, u)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code < 500 {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, fmt.Errorf("catalog request failed after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}

func (c *Client) getOnce(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}
	return body, nil
}

// statusError carries a non-200 upstream response.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog responded %d: %s", e.code, e.body)
}
