package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
)

var (
	// ErrUnknownContent is returned for a collection name the CMS does
	// not carry.
	ErrUnknownContent = errors.New("unknown content collection")

	// ErrEntryNotFound is returned when a single-entry fetch comes back
	// empty.
	ErrEntryNotFound = errors.New("content entry not found")
)

// contentTypes maps the app-facing collection names onto the CMS
// content-type identifiers.
var contentTypes = map[string]string{
	"products":      "product",
	"categories":    "category",
	"homepage":      "homepage",
	"contact":       "contact",
	"about":         "about",
	"customer_info": "customer_info",
}

// Config carries the delivery-API credentials.
type Config struct {
	BaseURL       string
	APIKey        string
	DeliveryToken string
	Environment   string
	Timeout       time.Duration
}

// Client is the read-only facade over the headless CMS delivery API.
// Records come back untyped; the client takes no recovery action on
// fetch errors beyond the circuit breaker (no retry, no backoff).
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	sfg        singleflight.Group // collapses concurrent fetches of the same resource
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name: "content-delivery",
		}),
	}
}

// FetchCollection returns every entry of the named collection.
func (c *Client) FetchCollection(ctx context.Context, name string) ([]domain.Record, error) {
	contentType, ok := contentTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContent, name)
	}

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries?environment=%s",
		c.cfg.BaseURL, contentType, url.QueryEscape(c.cfg.Environment))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Entries []domain.Record `json:"entries"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode %s entries: %w", name, err)
	}
	return resp.Entries, nil
}

// FetchEntry returns one entry of the named collection by uid.
func (c *Client) FetchEntry(ctx context.Context, name, uid string) (domain.Record, error) {
	contentType, ok := contentTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContent, name)
	}

	endpoint := fmt.Sprintf("%s/v3/content_types/%s/entries/%s?environment=%s",
		c.cfg.BaseURL, contentType, url.PathEscape(uid), url.QueryEscape(c.cfg.Environment))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Entry domain.Record `json:"entry"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode %s entry: %w", name, err)
	}
	if resp.Entry == nil {
		return nil, ErrEntryNotFound
	}
	return resp.Entry, nil
}

// FetchSingle returns the sole entry of a single-entry collection
// (homepage, contact, about, customer_info).
func (c *Client) FetchSingle(ctx context.Context, name string) (domain.Record, error) {
	entries, err := c.FetchCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return entries[0], nil
}

// get issues the HTTP request behind the circuit breaker, collapsing
// concurrent requests for the same endpoint into one round trip.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	v, err, _ := c.sfg.Do(endpoint, func() (any, error) {
		return c.breaker.Execute(func() ([]byte, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("api_key", c.cfg.APIKey)
			req.Header.Set("access_token", c.cfg.DeliveryToken)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, fmt.Errorf("content fetch failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("content fetch returned status %d", resp.StatusCode)
			}
			return io.ReadAll(resp.Body)
		})
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
