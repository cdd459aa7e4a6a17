package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
	"github.com/anikeep/anikeep/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries in the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		favoritesOnly, _ := cmd.Flags().GetBool("favorites")
		featuredOnly, _ := cmd.Flags().GetBool("featured")
		genre, _ := cmd.Flags().GetString("genre")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		entries, err := application.Service.ListCollection(context.Background())
		if err != nil {
			return err
		}

		filtered := make([]domain.Entry, 0, len(entries))
		for _, e := range entries {
			if favoritesOnly && !e.IsFavorite {
				continue
			}
			if featuredOnly && !e.IsFeatured {
				continue
			}
			if genre != "" && !strings.Contains(strings.ToLower(e.Genre), strings.ToLower(genre)) {
				continue
			}
			filtered = append(filtered, e)
		}

		printEntries(filtered)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("favorites", false, "show only favorite entries")
	listCmd.Flags().Bool("featured", false, "show only featured entries")
	listCmd.Flags().String("genre", "", "show only entries matching a genre")
	rootCmd.AddCommand(listCmd)
}
