package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import <query>",
	Short: "Import an anime from the external catalog",
	Long: `Import searches the catalog and saves the first result into the
collection. Pass --mal-id to pick a specific result from the search
instead of the first one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		malID, _ := cmd.Flags().GetInt64("mal-id")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		ctx := context.Background()
		results, err := application.Service.SearchCatalog(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no catalog results for %q", strings.Join(args, " "))
		}

		pick := results[0]
		if malID != 0 {
			found := false
			for _, r := range results {
				if r.MalID == malID {
					pick = r
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("no result with mal id %d for %q", malID, strings.Join(args, " "))
			}
		}

		entry, err := application.Service.ImportFromCatalog(ctx, pick)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %q with id %d\n", entry.Title, entry.ID)
		return nil
	},
}

func init() {
	importCmd.Flags().Int64("mal-id", 0, "pick the search result with this catalog id")
	rootCmd.AddCommand(importCmd)
}
