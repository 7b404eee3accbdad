package opendota

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api.opendota.com/api"

	// Rate limits for the free tier (conservative values)
	requestsPerSecond = 3  // Actual: ~5/s burst, using 3 for safety
	requestsPerMinute = 50 // Actual: 60/min, using 50 for safety
)

// Client is a rate-limited OpenDota API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// Rate limiting
	mu          sync.Mutex
	shortWindow []time.Time // Requests in the last second
	longWindow  []time.Time // Requests in the last minute
}

// NewClient creates a new OpenDota API client. An API key is optional;
// when OPENDOTA_API_KEY is set it is attached to every request.
func NewClient() *Client {
	return &Client{
		apiKey:  os.Getenv("OPENDOTA_API_KEY"),
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		shortWindow: make([]time.Time, 0),
		longWindow:  make([]time.Time, 0),
	}
}

// waitForRateLimit blocks until we can make another request
func (c *Client) waitForRateLimit() {
	for {
		c.mu.Lock()

		now := time.Now()
		oneSecondAgo := now.Add(-1 * time.Second)
		oneMinuteAgo := now.Add(-1 * time.Minute)

		newShort := make([]time.Time, 0, len(c.shortWindow))
		for _, t := range c.shortWindow {
			if t.After(oneSecondAgo) {
				newShort = append(newShort, t)
			}
		}
		c.shortWindow = newShort

		newLong := make([]time.Time, 0, len(c.longWindow))
		for _, t := range c.longWindow {
			if t.After(oneMinuteAgo) {
				newLong = append(newLong, t)
			}
		}
		c.longWindow = newLong

		if len(c.shortWindow) >= requestsPerSecond {
			waitTime := c.shortWindow[0].Add(time.Second).Sub(now) + 50*time.Millisecond
			c.mu.Unlock()
			time.Sleep(waitTime)
			continue
		}

		if len(c.longWindow) >= requestsPerMinute {
			waitTime := c.longWindow[0].Add(time.Minute).Sub(now) + 50*time.Millisecond
			c.mu.Unlock()
			fmt.Printf("      [Rate limit] %d req/min, waiting %.1fs...\n", len(c.longWindow), waitTime.Seconds())
			time.Sleep(waitTime)
			continue
		}

		c.shortWindow = append(c.shortWindow, time.Now())
		c.longWindow = append(c.longWindow, time.Now())
		c.mu.Unlock()
		return
	}
}

// doRequest makes a rate-limited GET request and decodes the JSON body
func (c *Client) doRequest(ctx context.Context, url string, result interface{}) error {
	c.waitForRateLimit()

	if c.apiKey != "" {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url = url + sep + "api_key=" + c.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == 429 {
		return fmt.Errorf("API rate limited (429), Retry-After: %s", resp.Header.Get("Retry-After"))
	}

	if resp.StatusCode == 404 {
		return fmt.Errorf("API returned 404 Not Found - match/team may not exist")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// GetMatch fetches the full raw record for a match
func (c *Client) GetMatch(ctx context.Context, matchID int64) (*RawMatch, error) {
	url := fmt.Sprintf("%s/matches/%d", c.baseURL, matchID)

	var match RawMatch
	err := c.doRequest(ctx, url, &match)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetTeamMatches fetches the match history summaries for a team
func (c *Client) GetTeamMatches(ctx context.Context, teamID int64) ([]TeamMatchSummary, error) {
	url := fmt.Sprintf("%s/teams/%d/matches", c.baseURL, teamID)

	var matches []TeamMatchSummary
	err := c.doRequest(ctx, url, &matches)
	return matches, err
}
