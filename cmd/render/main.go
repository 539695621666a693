package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"staycards/internal/adapters/observability"
	"staycards/internal/adapters/page"
	"staycards/internal/app"
	"staycards/internal/shared"
)

var (
	outPath   string
	sourceURL string
	limit     int
	title     string
)

var rootCmd = &cobra.Command{
	Use:   "render",
	Short: "Load the listings document once and write the listings page as static HTML.",
	Example: `
  # Render the configured source to stdout
  render

  # Render a local document to a file
  render --source data/listings.json --out public/index.html

  # Render only the first 10 listings
  render --limit 10 --out page.html
`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output HTML file (default: OUTPUT_PATH, else stdout)")
	rootCmd.Flags().StringVarP(&sourceURL, "source", "s", "", "Listings document URL or path (default: SOURCE_URL)")
	rootCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of listings (default: LISTING_LIMIT)")
	rootCmd.Flags().StringVar(&title, "title", page.DefaultTitle, "Page title")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := shared.Load()
	if err != nil {
		return err
	}
	// logs go to stderr so stdout stays clean for the page
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stderr)

	if sourceURL != "" {
		cfg.SourceURL = sourceURL
	}
	if limit > 0 {
		cfg.ListingLimit = limit
	}
	if outPath == "" {
		outPath = cfg.OutputPath
	}

	src, target, err := shared.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shared.Close(target); err != nil {
			log.Error().Err(err).Msg("close card container")
		}
	}()
	ps := app.NewPageService(src, target)

	// A failed load still renders the page, with the error indicator shown.
	loadErr := ps.Load(ctx)

	cards, err := ps.Cards(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := page.Render(&buf, page.NewView(title, ps.Status(), cards)); err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), outPath, buf.Bytes()); err != nil {
		return err
	}

	st := ps.Status()
	log.Info().Str("state", string(st.State)).Int("cards", st.Cards).Str("out", outPath).Msg("page rendered")
	if loadErr != nil {
		return fmt.Errorf("listings not loaded: %w", loadErr)
	}
	return nil
}

func writeOutput(stdout io.Writer, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(b)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
