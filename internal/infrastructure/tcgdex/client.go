package tcgdex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"cardplanet/internal/domain/entity"
)

const requestTimeout = 30 * time.Second

// Client reads the French TCGdex set catalog.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		baseURL:     baseURL,
	}
}

type set struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	ReleaseDate string `json:"releaseDate"`
	CardCount   struct {
		Total int `json:"total"`
	} `json:"cardCount"`
}

// Sets retrieves all French set descriptions.
func (c *Client) Sets(ctx context.Context) ([]entity.Series, error) {
	url := fmt.Sprintf("%s/fr/sets", c.baseURL)

	var sets []set
	if err := c.doRequest(ctx, url, &sets); err != nil {
		return nil, fmt.Errorf("failed to get sets: %w", err)
	}

	series := make([]entity.Series, 0, len(sets))
	for _, s := range sets {
		series = append(series, entity.Series{
			ID:          s.ID,
			Name:        s.Name,
			Logo:        s.Logo,
			ReleaseDate: s.ReleaseDate,
			CardCount:   s.CardCount.Total,
		})
	}

	return series, nil
}

// SetName retrieves a single set's French name by id. Implements the
// resolver's remote lookup step.
func (c *Client) SetName(ctx context.Context, id string) (string, error) {
	url := fmt.Sprintf("%s/fr/sets/%s", c.baseURL, id)

	var s set
	if err := c.doRequest(ctx, url, &s); err != nil {
		return "", fmt.Errorf("failed to get set %s: %w", id, err)
	}

	return s.Name, nil
}

func (c *Client) doRequest(ctx context.Context, url string, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
