package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ndanilin/homepage/internal/background"
)

var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Warm the cache for the background images",
	Long: `Fetches every configured background image once so a CDN or caching
proxy in front of the asset base has them warm before visitors arrive.
The asset base must be an absolute http(s) URL.`,
	RunE: runPreload,
}

func init() {
	preloadCmd.Flags().String("base", "", "override the asset base URL")
	rootCmd.AddCommand(preloadCmd)
}

func runPreload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	base := cfg.AssetBase
	if override, _ := cmd.Flags().GetString("base"); override != "" {
		base = override
	}

	if len(cfg.Backgrounds) == 0 {
		fmt.Println("No background images configured, nothing to preload.")
		return nil
	}

	store := background.NewStore(base, cfg.Backgrounds)
	p := background.NewPreloader(store)

	bar := progressbar.NewOptions(len(cfg.Backgrounds),
		progressbar.OptionSetDescription("Preloading backgrounds"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var failed int
	p.PreloadEach(cmd.Context(), func(name string, err error) {
		if err != nil {
			failed++
			if verbose {
				fmt.Printf("\n%s: %v\n", name, err)
			}
		}
		bar.Describe(name)
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed to preload", failed, len(cfg.Backgrounds))
	}
	fmt.Printf("Preloaded %d images from %s\n", len(cfg.Backgrounds), base)
	return nil
}
