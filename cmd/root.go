package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/filmdex/filmdex/config"
	"github.com/filmdex/filmdex/filter"
	"github.com/filmdex/filmdex/swapi"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	swapiClient *swapi.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "filmdex",
	Short: "Browse Star Wars films from the public SWAPI",
	Long: `filmdex fetches the Star Wars films listing from the public SWAPI
endpoint and presents it as a table, a single-film view, or an
interactive browser with loading and error states.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the SWAPI client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create SWAPI client
	swapiClient, err = swapi.NewClient(
		cfg.SWAPI.URL,
		logger,
		swapi.WithTimeout(time.Duration(cfg.SWAPI.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create SWAPI client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when configured and writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List films, optionally filtered by an expression",
	Long: `Fetch the films listing and print it as a table.

An expr expression can narrow the result, e.g.:

  filmdex list --filter 'Episode >= 4 and Episode <= 6'
  filmdex list --filter 'contains(Title, "hope")'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	films, err := swapiClient.Films(ctx)
	if err != nil {
		return err
	}

	// Narrow by expression if one applies; listing everything is fine.
	expr := getFilterExpression()
	if expr != "" {
		logger.Debug().Str("filter", expr).Msg("Applying filter")

		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		films = f.Apply(films)
	}

	if len(films) == 0 {
		fmt.Println("No films found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Episode", "Title", "Released", "Director"})
	for _, film := range films {
		t.AppendRow(table.Row{film.ID, film.Title, film.ReleaseDate, film.Director})
	}
	t.Render()

	if cfg.Display.ShowOpening {
		for _, film := range films {
			fmt.Printf("\n%s\n%s\n", film.Title, film.OpeningText)
		}
	}

	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() string {
	// Priority: command line filter > preset > config default > none
	if filterExpr != "" {
		return filterExpr
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter.Expression
		}
		logger.Warn().Str("preset", preset).Msg("Preset not found in config")
		return ""
	}

	return cfg.Filter.DefaultExpression
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to SWAPI",
	Long:  `Test the connection to the configured SWAPI endpoint and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to SWAPI at %s...\n", cfg.SWAPI.URL)

	ctx := context.Background()
	films, err := swapiClient.Films(ctx)
	if err != nil {
		return fmt.Errorf("failed to get films: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nSWAPI Statistics:\n")
	fmt.Printf("- Total films: %d\n", len(films))

	if len(films) > 0 {
		fmt.Printf("\nAvailable films:\n")
		for _, film := range films {
			fmt.Printf("  • %s (Episode %d)\n", film.Title, film.ID)
		}
	}

	return nil
}
