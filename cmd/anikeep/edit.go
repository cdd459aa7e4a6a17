package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of an existing entry",
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

		ctx := context.Background()
		entry, err := application.Service.GetEntry(ctx, id)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("title") {
			entry.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			entry.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("rating") {
			entry.Rating, _ = cmd.Flags().GetFloat64("rating")
		}
		if cmd.Flags().Changed("genre") {
			genres, _ := cmd.Flags().GetStringSlice("genre")
			entry.Genre = strings.Join(genres, ", ")
		}
		if cmd.Flags().Changed("image") {
			entry.ImageURL, _ = cmd.Flags().GetString("image")
		}

		updated, err := application.Service.UpdateEntry(ctx, *entry)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %q\n", updated.Title)
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().Float64("rating", 0, "new rating between 0 and 10")
	editCmd.Flags().StringSlice("genre", nil, "new genre, may be repeated")
	editCmd.Flags().String("image", "", "new image URL")
	rootCmd.AddCommand(editCmd)
}
