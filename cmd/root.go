package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndanilin/homepage/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Personal blog and portfolio server",
	Long: `Homepage serves a small personal site: a handful of technical articles
written in markdown, rendered with server-side syntax highlighting, over
a rotating background image that is preloaded so swaps never flash.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "homepage.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
