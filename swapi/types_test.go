package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFilm(t *testing.T) {
	raw := RawFilm{
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period...",
		ReleaseDate:  "1977-05-25",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
	}

	film := ConvertFilm(raw)

	assert.Equal(t, 4, film.ID)
	assert.Equal(t, "A New Hope", film.Title)
	assert.Equal(t, "It is a period...", film.OpeningText)
	assert.Equal(t, "1977-05-25", film.ReleaseDate)
	assert.Equal(t, "George Lucas", film.Director)
}

func TestConvertFilmsPreservesOrder(t *testing.T) {
	raw := []RawFilm{
		{Title: "The Phantom Menace", EpisodeID: 1},
		{Title: "A New Hope", EpisodeID: 4},
		{Title: "Attack of the Clones", EpisodeID: 2},
	}

	films := ConvertFilms(raw)

	assert.Len(t, films, 3)
	assert.Equal(t, []int{1, 4, 2}, []int{films[0].ID, films[1].ID, films[2].ID})
}

func TestConvertFilmsEmpty(t *testing.T) {
	films := ConvertFilms(nil)
	assert.Empty(t, films)
}
