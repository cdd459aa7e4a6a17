package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry of the collection",
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

		entry, err := application.Service.GetEntry(context.Background(), id)
		if err != nil {
			return err
		}

		printEntry(entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
