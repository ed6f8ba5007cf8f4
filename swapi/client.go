package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency limits how many character lookups run at once.
const DefaultConcurrency = 10

// Client represents a SWAPI client
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      zerolog.Logger
	concurrency int
}

// NewClient creates a new SWAPI client. Construction performs no
// network I/O; connectivity problems surface on the first request.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}

	// Ensure baseURL doesn't have trailing slash
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:      logger,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// get issues a bare GET to the given absolute URL. SWAPI is public, so
// no headers are set. Any transport failure or non-2xx status collapses
// into ErrRequestFailed; the cause is kept at debug level only.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("SWAPI request failed")
		return nil, ErrRequestFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("Failed to read SWAPI response body")
		return nil, ErrRequestFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("url", url).
			Msg("SWAPI returned failure status")
		return nil, ErrRequestFailed
	}

	return body, nil
}

// Films fetches the films listing in a single request and returns the
// normalized records in the order the service sent them. No retries
// and no timeout beyond the HTTP client default. A body that fails to
// parse propagates the parser's error unchanged.
func (c *Client) Films(ctx context.Context) ([]Film, error) {
	body, err := c.get(ctx, c.baseURL+"/films/")
	if err != nil {
		return nil, err
	}

	var response FilmsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	films := ConvertFilms(response.Results)

	c.logger.Debug().Int("count", len(films)).Msg("Retrieved films from SWAPI")

	return films, nil
}

// FilmByEpisode fetches the listing and returns the film with the given
// episode number.
func (c *Client) FilmByEpisode(ctx context.Context, episode int) (Film, error) {
	films, err := c.Films(ctx)
	if err != nil {
		return Film{}, err
	}

	for _, film := range films {
		if film.ID == episode {
			return film, nil
		}
	}

	return Film{}, fmt.Errorf("%w: episode %d", ErrFilmNotFound, episode)
}

// Characters resolves a film's character URLs to names, fetching them
// concurrently with bounded fan-out. Order matches the film's character
// list; individual lookup failures are logged and skipped rather than
// failing the whole resolution.
func (c *Client) Characters(ctx context.Context, film Film) ([]string, error) {
	if len(film.CharacterURLs) == 0 {
		return nil, nil
	}

	names := make([]string, len(film.CharacterURLs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, url := range film.CharacterURLs {
		g.Go(func() error {
			body, err := c.get(ctx, url)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("url", url).
					Str("film", film.Title).
					Msg("Failed to fetch character")
				return nil
			}

			var person Person
			if err := json.Unmarshal(body, &person); err != nil {
				c.logger.Warn().Err(err).Str("url", url).Msg("Failed to parse character")
				return nil
			}

			names[i] = person.Name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop slots left empty by failed lookups.
	resolved := names[:0]
	for _, name := range names {
		if name != "" {
			resolved = append(resolved, name)
		}
	}

	return resolved, nil
}

// TestConnection verifies the films endpoint is reachable.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.get(ctx, c.baseURL+"/films/")
	return err
}
