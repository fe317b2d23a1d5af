package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
)

// Config controls how the YouTube client reaches the Data API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client searches the YouTube Data API v3 and fetches video details.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a YouTube client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SearchVideos runs a relevance-ordered video search and returns the matching IDs.
func (c *Client) SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error) {
	if !c.Configured() {
		return nil, highlights.ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", params.Query)
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(clampResults(params.MaxResults)))
	q.Set("order", "relevance")
	if !params.PublishedAfter.IsZero() {
		q.Set("publishedAfter", params.PublishedAfter.UTC().Format(time.RFC3339))
	}
	q.Set("key", c.apiKey)

	var payload searchResponse
	if err := c.get(ctx, "/search", q, &payload); err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	ids := make([]string, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// VideoDetails fetches snippet, statistics and content details for all ids in one request.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error) {
	if !c.Configured() {
		return nil, highlights.ErrMissingAPIKey
	}
	if len(ids) == 0 {
		return []highlights.Video{}, nil
	}

	q := url.Values{}
	q.Set("part", "snippet,statistics,contentDetails")
	q.Set("id", strings.Join(ids, ","))
	q.Set("key", c.apiKey)

	var payload videosResponse
	if err := c.get(ctx, "/videos", q, &payload); err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	videos := make([]highlights.Video, 0, len(payload.Items))
	for _, item := range payload.Items {
		videos = append(videos, mapVideo(item))
	}
	return videos, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

	msg := strings.TrimSpace(string(body))
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

func clampResults(n int) int {
	if n <= 0 {
		return 1
	}
	if n > maxSearchResults {
		return maxSearchResults
	}
	return n
}
