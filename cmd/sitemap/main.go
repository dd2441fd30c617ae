// Package main is the sitemap generator CLI. It walks the content
// stores and writes a complete sitemap.xml, intended to run on a
// schedule or as a deploy step.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"humoraq/internal/config"
	"humoraq/internal/database"
	"humoraq/internal/sitemap"
	"humoraq/internal/store"
)

var (
	flagOutput  string
	flagBaseURL string
	flagDryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml from the Humoraq content database",
	Long: `Generates the full sitemap: static pages, category pages, comedian
pages, every published joke under its canonical URL, and videos. Each
entry carries hreflang alternates for the supported languages.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (default from SITEMAP_OUTPUT)")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "site origin for URLs (default from SITE_BASE_URL)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "generate and validate without writing the file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagOutput == "" {
		flagOutput = cfg.SitemapOutput
	}
	if flagBaseURL == "" {
		flagBaseURL = cfg.BaseURL
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	gen := sitemap.New(store.NewJokeStore(db), store.NewVideoStore(db), flagBaseURL)

	doc, stats, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generate sitemap: %w", err)
	}

	warnings, err := sitemap.Validate(doc)
	if err != nil {
		return fmt.Errorf("validate sitemap: %w", err)
	}
	for _, warning := range warnings {
		slog.Warn("sitemap validation", "warning", warning)
	}

	if flagDryRun {
		slog.Info("dry run, skipping write", "urls", stats.Total)
		return nil
	}

	if err := sitemap.WriteFile(flagOutput, doc); err != nil {
		return err
	}

	slog.Info("sitemap written",
		"path", flagOutput,
		"urls", stats.Total,
		"jokes", stats.Jokes,
		"videos", stats.Videos,
	)
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("sitemap generation failed", "error", err)
		os.Exit(1)
	}
}
