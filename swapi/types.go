package swapi

// FilmsResponse is the envelope SWAPI returns for the films listing
type FilmsResponse struct {
	Count   int       `json:"count"`
	Results []RawFilm `json:"results"`
}

// RawFilm is the film record exactly as SWAPI serves it. The shape is
// owned by the remote service; fields we never display are omitted.
type RawFilm struct {
	Title         string   `json:"title"`
	EpisodeID     int      `json:"episode_id"`
	OpeningCrawl  string   `json:"opening_crawl"`
	Director      string   `json:"director"`
	Producer      string   `json:"producer"`
	ReleaseDate   string   `json:"release_date"`
	CharacterURLs []string `json:"characters"`
	URL           string   `json:"url"`
}

// Film is the normalized, display-ready record. It is created only by
// ConvertFilm and never mutated afterwards; every reload replaces the
// whole slice rather than merging.
type Film struct {
	ID            int
	Title         string
	OpeningText   string
	ReleaseDate   string
	Director      string
	Producer      string
	CharacterURLs []string
}

// Person is the subset of a SWAPI people record we care about when
// resolving a film's character URLs.
type Person struct {
	Name string `json:"name"`
}

// ConvertFilm maps a raw SWAPI record to the normalized Film shape.
// The episode identifier becomes the ID; ordering and content are
// carried over untouched.
func ConvertFilm(raw RawFilm) Film {
	return Film{
		ID:            raw.EpisodeID,
		Title:         raw.Title,
		OpeningText:   raw.OpeningCrawl,
		ReleaseDate:   raw.ReleaseDate,
		Director:      raw.Director,
		Producer:      raw.Producer,
		CharacterURLs: raw.CharacterURLs,
	}
}

// ConvertFilms maps a page of raw records in the order received. No
// filtering, sorting, or deduplication is applied.
func ConvertFilms(raw []RawFilm) []Film {
	films := make([]Film, 0, len(raw))
	for _, r := range raw {
		films = append(films, ConvertFilm(r))
	}
	return films
}
