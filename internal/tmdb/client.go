// Package tmdb talks to the external movie-metadata API. The provider
// is a black box: this client only fetches records, rate-limits itself,
// and caches single-movie lookups in Redis.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	// The provider allows ~50 req/s per key; stay well under it.
	rateLimit = 20
	rateBurst = 40
)

// ErrNotFound means the metadata API has no movie with that id.
var ErrNotFound = errors.New("movie not found")

// Movie is the slice of provider metadata this app keeps.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
}

// Client is a rate-limited metadata API client with a Redis read cache
// for by-id lookups. The cache client may be nil; lookups then always
// hit the API.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	cache       *redis.Client
	cacheTTL    time.Duration
}

// NewClient creates a new metadata API client.
func NewClient(baseURL, apiKey string, cache *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		cache:       cache,
		cacheTTL:    cacheTTL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type searchResponse struct {
	Results []Movie `json:"results"`
}

// SearchMovies queries the provider's title search.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	endpoint := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return parsed.Results, nil
}

// GetMovie fetches one movie by the provider's numeric id, serving from
// the Redis cache when possible. Cache failures fall through to the
// API; a missing movie is ErrNotFound, not a crash.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	cacheKey := fmt.Sprintf("tmdb:movie:%d", id)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var movie Movie
			if err := json.Unmarshal(cached, &movie); err == nil {
				return &movie, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, url.QueryEscape(c.apiKey))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, fmt.Errorf("failed to decode movie response: %w", err)
	}

	if c.cache != nil {
		if encoded, err := json.Marshal(&movie); err == nil {
			// Best effort; a Redis outage must not fail the lookup.
			c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL)
		}
	}
	return &movie, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("metadata API returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
