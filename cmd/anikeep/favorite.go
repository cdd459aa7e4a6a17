package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle the favorite flag on an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		entry, err := application.Service.ToggleFavorite(context.Background(), id)
		if err != nil {
			return err
		}

		if entry.IsFavorite {
			fmt.Printf("%q added to favorites\n", entry.Title)
		} else {
			fmt.Printf("%q removed from favorites\n", entry.Title)
		}
		return nil
	},
}

var featureCmd = &cobra.Command{
	Use:   "feature <id>",
	Short: "Toggle the featured flag on an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		entry, err := application.Service.ToggleFeatured(context.Background(), id)
		if err != nil {
			return err
		}

		if entry.IsFeatured {
			fmt.Printf("%q is now featured\n", entry.Title)
		} else {
			fmt.Printf("%q is no longer featured\n", entry.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(featureCmd)
}
