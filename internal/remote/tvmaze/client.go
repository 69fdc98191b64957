package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/justchokingaround/showshelf/internal/catalog"
	"github.com/justchokingaround/showshelf/internal/config"
	remotehttp "github.com/justchokingaround/showshelf/internal/remote/http"
)

// ErrNotFound is returned when TVMaze has no show with the requested id
var ErrNotFound = errors.New("show not found")

// Client talks to the TVMaze public API
type Client struct {
	baseURL    string
	httpClient *remotehttp.Client
	logger     *slog.Logger
}

var _ catalog.Source = (*Client)(nil)

// searchHit is one element of the /search/shows response
type searchHit struct {
	Score float64      `json:"score"`
	Show  catalog.Show `json:"show"`
}

// NewClient creates a TVMaze client from cfg
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := remotehttp.NewClient(remotehttp.ClientConfig{
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		UserAgent:  cfg.API.UserAgent,
		Debug:      cfg.Advanced.Debug,
		Logger:     logger,
	})

	baseURL := strings.TrimRight(cfg.API.BaseURL, "/")
	logger.Debug("tvmaze client ready",
		"base_url", baseURL,
		"timeout", httpClient.GetTimeout(),
		"max_retries", httpClient.GetMaxRetries(),
	)

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SearchShows returns the shows matching query in relevance order
func (c *Client) SearchShows(ctx context.Context, query string) ([]catalog.Show, error) {
	var hits []searchHit
	if err := c.get(ctx, "/search/shows", map[string]string{"q": query}, &hits); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	shows := make([]catalog.Show, 0, len(hits))
	for _, hit := range hits {
		shows = append(shows, hit.Show)
	}
	return shows, nil
}

// GetShow returns a single show record
func (c *Client) GetShow(ctx context.Context, id int) (*catalog.Show, error) {
	var show catalog.Show
	if err := c.get(ctx, fmt.Sprintf("/shows/%d", id), nil, &show); err != nil {
		return nil, fmt.Errorf("get show %d failed: %w", id, err)
	}
	return &show, nil
}

// GetEpisodes returns the episode list of a show
func (c *Client) GetEpisodes(ctx context.Context, showID int) ([]catalog.Episode, error) {
	var episodes []catalog.Episode
	if err := c.get(ctx, fmt.Sprintf("/shows/%d/episodes", showID), nil, &episodes); err != nil {
		return nil, fmt.Errorf("get episodes for show %d failed: %w", showID, err)
	}
	if episodes == nil {
		episodes = []catalog.Episode{}
	}
	return episodes, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, result interface{}) error {
	fullURL := c.baseURL + endpoint

	if len(params) > 0 {
		u, err := url.Parse(fullURL)
		if err != nil {
			return fmt.Errorf("invalid URL: %w", err)
		}

		q := u.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		u.RawQuery = q.Encode()
		fullURL = u.String()
	}

	err := c.httpClient.GetJSON(ctx, fullURL, result)
	var statusErr *remotehttp.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	}
	return err
}
