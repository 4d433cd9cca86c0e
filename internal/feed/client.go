package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	subscribedPath = "/api/v1/pulses/subscribed"
	pageSize       = 50
)

// Client talks to an OTX-compatible pulse API
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pulsePage struct {
	Count   int     `json:"count"`
	Next    string  `json:"next"`
	Results []Pulse `json:"results"`
}

// FetchPulses pages through subscribed pulses modified within the configured
// lookback window, up to max_pages.
func (c *Client) FetchPulses(ctx context.Context) ([]Pulse, error) {
	since := time.Now().Add(-c.config.Lookback).UTC().Format("2006-01-02T15:04:05")

	var pulses []Pulse
	for page := 1; page <= c.config.MaxPages; page++ {
		result, err := c.fetchPage(ctx, page, since)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		pulses = append(pulses, result.Results...)
		log.Printf("feed: page %d: %d pulses (%d total so far)", page, len(result.Results), len(pulses))

		if result.Next == "" {
			break
		}
	}

	return pulses, nil
}

// FetchIndicators fetches pulses and flattens them into indicator rows.
func (c *Client) FetchIndicators(ctx context.Context) ([]Indicator, error) {
	pulses, err := c.FetchPulses(ctx)
	if err != nil {
		return nil, err
	}
	return Flatten(pulses), nil
}

func (c *Client) fetchPage(ctx context.Context, page int, since string) (*pulsePage, error) {
	u, err := url.Parse(c.config.BaseURL + subscribedPath)
	if err != nil {
		return nil, fmt.Errorf("invalid feed base URL %q: %w", c.config.BaseURL, err)
	}

	q := u.Query()
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("modified_since", since)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-OTX-API-KEY", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed API returned %d: %s", resp.StatusCode, string(body))
	}

	var result pulsePage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	log.Printf("feed: fetched page %d in %v", page, time.Since(start))
	return &result, nil
}
