package swapi

import "errors"

// Common errors returned by the SWAPI client.
var (
	// ErrRequestFailed is returned for any transport or status failure.
	// The text is the user-facing message; the underlying cause is only
	// logged, never surfaced.
	ErrRequestFailed = errors.New("Something Went Wrong")

	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid swapi configuration")

	// ErrFilmNotFound indicates no film matched the requested episode.
	ErrFilmNotFound = errors.New("film not found")
)
