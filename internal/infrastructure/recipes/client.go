package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pantrypal/backend/internal/domain"
	"golang.org/x/time/rate"
)

// tokenRefreshMargin renews the access token slightly before expiry so
// an in-flight request never carries a token that dies mid-request.
const tokenRefreshMargin = 30 * time.Second

// Client handles communication with the recipe search API. The API
// uses OAuth2 client-credentials: the token is fetched lazily, cached,
// and refreshed before expiry.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	rateLimiter  *rate.Limiter
	debug        bool

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// tokenResponse is the OAuth2 token endpoint response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewClient creates a new recipe API client. requestsPerHour bounds
// outbound calls; pass 0 for the provider default of 5000/hour.
func NewClient(clientID, clientSecret, baseURL, tokenURL string, requestsPerHour int) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 5000
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		tokenURL:     tokenURL,
		rateLimiter:  limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// token returns a valid access token, fetching a fresh one when the
// cached token is missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "basic")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", domain.ErrRecipeAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token endpoint status %d: %s", domain.ErrRecipeAPIFailure, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	expiresIn := token.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)

	if c.debug {
		log.Printf("[RECIPES] token refreshed, expires in %ds", expiresIn)
	}

	return c.accessToken, nil
}

// invalidateToken drops the cached token so the next call fetches a new one
func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// SearchRecipes searches the recipe API for a single query variant
func (c *Client) SearchRecipes(ctx context.Context, query string, maxResults int) (*domain.RecipeAPIResponse, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	endpoint := fmt.Sprintf("%s/v1/recipes/search", c.baseURL)
	params := url.Values{}
	params.Add("q", query)
	params.Add("max", strconv.Itoa(maxResults))
	params.Add("format", "json")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "PantryPal/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[RECIPES] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrRecipeAPIFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			var searchResp domain.RecipeAPIResponse
			if err := json.Unmarshal(body, &searchResp); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			if c.debug {
				log.Printf("[RECIPES] %d recipes for query %q", len(searchResp.Recipes), query)
			}
			return &searchResp, nil

		case resp.StatusCode == http.StatusUnauthorized:
			// Token may have been revoked; refetch on the next attempt
			c.invalidateToken()
			lastErr = fmt.Errorf("%w: status 401", domain.ErrRecipeAPIFailure)
			continue

		case resp.StatusCode == http.StatusNotFound:
			return nil, domain.ErrRecipeNotFound

		default:
			if c.debug {
				log.Printf("[RECIPES] API error (attempt %d) - status %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrRecipeAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
		}
	}

	return nil, lastErr
}

// exponentialBackoff returns the wait before retrying the given attempt:
// 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
