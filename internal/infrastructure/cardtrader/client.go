package cardtrader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	imageBaseURL   = "https://www.cardtrader.com/images/blueprint/"
	requestTimeout = 30 * time.Second
)

// Client talks to the CardTrader marketplace API with a bearer token and
// a client-side rate limit.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	token       string
}

// NewClient creates a CardTrader API client. The limiter keeps us under
// the marketplace's 10 req/sec allowance.
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(10), 1),
		baseURL:     baseURL,
		token:       token,
	}
}

// Products retrieves the full inventory export.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	url := fmt.Sprintf("%s/products/export", c.baseURL)

	var products []Product
	if err := c.doRequest(ctx, url, &products); err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}

	return products, nil
}

// Expansions retrieves the expansion catalog export.
func (c *Client) Expansions(ctx context.Context) ([]Expansion, error) {
	url := fmt.Sprintf("%s/expansions/export", c.baseURL)

	var expansions []Expansion
	if err := c.doRequest(ctx, url, &expansions); err != nil {
		return nil, fmt.Errorf("failed to export expansions: %w", err)
	}

	return expansions, nil
}

// ImageURL builds the public card image URL for a blueprint.
func ImageURL(blueprintID int) string {
	if blueprintID == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d.jpg", imageBaseURL, blueprintID)
}

func (c *Client) doRequest(ctx context.Context, url string, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
