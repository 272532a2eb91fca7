package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/devfolio/internal/site"
	"github.com/Zachkp/devfolio/internal/theme"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Checks the site data and content without serving",
	Long: `The validate command loads the profile and project records, parses
every article, and resolves the configured theme. Duplicate slugs,
missing required fields, bad dates, and unknown theme colors all fail
the command, so it can gate a deploy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := site.Load(appConfig.DataDir, appConfig.ContentDir)
		if err != nil {
			return err
		}

		if _, err := theme.New(appConfig.Theme.Primary); err != nil {
			return err
		}

		published := svc.PublishedPosts()
		fmt.Printf("OK: %d projects, %d published posts, theme %q\n",
			len(svc.Projects()), len(published), appConfig.Theme.Primary)
		for _, p := range published {
			fmt.Printf("  %s  %s\n", p.PublishedAt.Format("2006-01-02"), p.Slug)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
