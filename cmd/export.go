package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndanilin/homepage/internal/articles"
	"github.com/ndanilin/homepage/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static HTML",
	Long: `Renders every article to a static HTML file, along with the stylesheet
and an index.html redirect, for hosting without the server.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	extra, err := articles.LoadDir(cfg.ContentDir, cfg.Include, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("loading content dir: %w", err)
	}
	registry, err := articles.NewRegistry(cfg.DefaultArticle, extra...)
	if err != nil {
		return fmt.Errorf("building article registry: %w", err)
	}

	outputDir, _ := cmd.Flags().GetString("output")

	// Static pages carry a fixed background: the first candidate image.
	var bg string
	if len(cfg.Backgrounds) > 0 {
		bg = cfg.AssetBase + cfg.Backgrounds[0]
	}

	g := &site.Generator{
		Registry:   registry,
		OutputDir:  outputDir,
		SiteTitle:  cfg.Title,
		Background: bg,
	}
	pageCount, err := g.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
