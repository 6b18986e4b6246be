package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const requestTimeout = 30 * time.Second

// Client resolves localized Pokémon species names.
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

type species struct {
	Names []struct {
		Name     string `json:"name"`
		Language struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"names"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SpeciesName extracts the species from an English card name ("Pikachu V"
// becomes "pikachu") and returns its French name. The English name comes
// back unchanged when the species is unknown.
func (c *Client) SpeciesName(ctx context.Context, nameEN string) (string, error) {
	simplified := simplify(nameEN)
	if simplified == "" {
		return nameEN, nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nameEN, fmt.Errorf("rate limiter wait: %w", err)
	}

	url := fmt.Sprintf("%s/pokemon-species/%s", c.baseURL, simplified)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nameEN, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nameEN, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nameEN, nil
	}

	var s species
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nameEN, fmt.Errorf("decode response: %w", err)
	}

	for _, n := range s.Names {
		if n.Language.Name == "fr" {
			return n.Name, nil
		}
	}

	return nameEN, nil
}

func simplify(nameEN string) string {
	words := strings.Fields(nonAlphanumeric.ReplaceAllString(nameEN, " "))
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0])
}
