package swapi

import (
	"context"
)

// API defines the interface for SWAPI operations
type API interface {
	// TestConnection verifies the client can reach SWAPI
	TestConnection(ctx context.Context) error

	// Films retrieves the normalized films listing
	Films(ctx context.Context) ([]Film, error)

	// FilmByEpisode retrieves one film by episode number
	FilmByEpisode(ctx context.Context, episode int) (Film, error)

	// Characters resolves a film's character URLs to names
	Characters(ctx context.Context, film Film) ([]string, error)
}
