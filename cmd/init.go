package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ndanilin/homepage/internal/articles"
	"github.com/ndanilin/homepage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes a homepage.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slugs := make([]string, 0, len(articles.Builtin()))
		for _, a := range articles.Builtin() {
			slugs = append(slugs, a.Slug)
		}
		_, err := config.RunWizard(cfgFile, slugs)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
