package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/devfolio/internal/config"
)

var cfgFile string
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Personal portfolio and blog site",
	Long: `devfolio serves a personal portfolio and blog: static profile and
project data from ./data/, Markdown articles with front matter from
./content/posts/, rendered with Gin templates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
