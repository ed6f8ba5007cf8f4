package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var showCharacters bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <episode>",
	Short: "Show one film's opening crawl",
	Long: `Show a single film by episode number, including its full opening
crawl. With --characters the film's character list is resolved to
names as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showCharacters, "characters", false, "also resolve and print the film's characters")
}

func runShow(cmd *cobra.Command, args []string) error {
	episode, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid episode number '%s': must be an integer", args[0])
	}

	ctx := context.Background()

	film, err := swapiClient.FilmByEpisode(ctx, episode)
	if err != nil {
		return err
	}

	fmt.Printf("%s (Episode %d)\n", film.Title, film.ID)
	fmt.Printf("Released: %s\n", film.ReleaseDate)
	if film.Director != "" {
		fmt.Printf("Director: %s\n", film.Director)
	}
	if film.Producer != "" {
		fmt.Printf("Producer: %s\n", film.Producer)
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(film.OpeningText)

	if showCharacters {
		names, err := swapiClient.Characters(ctx, film)
		if err != nil {
			return fmt.Errorf("failed to resolve characters: %w", err)
		}

		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Characters (%d):\n", len(names))
		for _, name := range names {
			fmt.Printf("  • %s\n", name)
		}
	}

	return nil
}
