// Package view owns the state driving what the rendering surface shows:
// the current films, the loading flag, and the last error. The rendered
// branch is derived fresh from every snapshot via Screen, a tagged
// variant that makes the precedence rule structural instead of an
// order-of-checks accident.
package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/filmdex/filmdex/swapi"
)

// Fetcher loads the films listing. Satisfied by *swapi.Client.
type Fetcher interface {
	Films(ctx context.Context) ([]swapi.Film, error)
}

// Screen identifies which branch the rendering surface should show.
type Screen int

const (
	// ScreenPlaceholder shows the "no films found" message.
	ScreenPlaceholder Screen = iota
	// ScreenFilms shows the film list.
	ScreenFilms
	// ScreenError shows the stored error text.
	ScreenError
	// ScreenLoading shows the loading indicator.
	ScreenLoading
)

// State is one immutable snapshot of the controller.
type State struct {
	Films   []swapi.Film
	Loading bool
	Err     string
}

// Screen derives the rendered branch. Loading wins over everything,
// including a stale error or a previously loaded list; an error wins
// over stale films.
func (s State) Screen() Screen {
	switch {
	case s.Loading:
		return ScreenLoading
	case s.Err != "":
		return ScreenError
	case len(s.Films) > 0:
		return ScreenFilms
	default:
		return ScreenPlaceholder
	}
}

// Controller holds the view state and runs the reload cycle. Reloads
// may overlap freely: there is no guard and no cancellation of an
// in-flight fetch, so whichever completion lands last wins.
type Controller struct {
	mu      sync.Mutex
	fetcher Fetcher
	state   State
	logger  zerolog.Logger
}

// NewController creates a controller around the given fetcher.
func NewController(fetcher Fetcher, logger zerolog.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reload runs one fetch cycle: mark loading and clear the error, fetch,
// then apply the outcome. On success the films are replaced wholesale;
// on failure the error text is stored and the previous films are kept.
// The loading flag is cleared on both paths.
func (c *Controller) Reload(ctx context.Context) {
	c.Begin()

	films, err := c.fetcher.Films(ctx)

	c.Finish(films, err)
}

// Begin marks the start of a reload: the loading flag goes up and any
// previous error is cleared. Exposed so a rendering surface can show
// the loading branch before its own fetch command completes.
func (c *Controller) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Loading = true
	c.state.Err = ""
}

// Finish applies a reload outcome.
func (c *Controller) Finish(films []swapi.Film, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Debug().Err(err).Msg("Reload failed")
		c.state.Err = err.Error()
	} else {
		c.state.Films = films
	}

	c.state.Loading = false
}
