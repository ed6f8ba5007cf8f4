// Package swapi provides a client for the public Star Wars API.
//
// The client fetches the films listing in a single GET request and maps
// each raw record into the normalized Film shape used across filmdex.
// Transport and status failures collapse into one fixed user-facing
// error (ErrRequestFailed); body parse failures are returned verbatim.
//
// Create a client and fetch the films:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := swapi.NewClient("https://swapi.dev/api", logger,
//		swapi.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	films, err := client.Films(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Character lookups fan out concurrently with a bounded limit; all
// other operations perform exactly one request per invocation, with no
// retries and no caching.
package swapi
