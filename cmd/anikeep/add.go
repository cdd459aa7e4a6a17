package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
	"github.com/anikeep/anikeep/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manually described anime to the collection",
	Long: `Add creates a collection entry from the given flags, without going
through the external catalog. Title, description, rating and at least
one genre are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		rating, _ := cmd.Flags().GetString("rating")
		genres, _ := cmd.Flags().GetStringSlice("genre")
		image, _ := cmd.Flags().GetString("image")
		favorite, _ := cmd.Flags().GetBool("favorite")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		entry, err := application.Service.SaveManualEntry(context.Background(), domain.ManualForm{
			Title:       title,
			Description: description,
			Rating:      rating,
			Genres:      genres,
			ImageURL:    image,
			IsFavorite:  favorite,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %q with id %d\n", entry.Title, entry.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "title of the anime")
	addCmd.Flags().String("description", "", "description (truncated at 500 characters)")
	addCmd.Flags().String("rating", "", "rating between 0 and 10")
	addCmd.Flags().StringSlice("genre", nil, "genre, may be repeated")
	addCmd.Flags().String("image", "", "image URL")
	addCmd.Flags().Bool("favorite", false, "mark as favorite")
	rootCmd.AddCommand(addCmd)
}
