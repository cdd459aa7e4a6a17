package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry from the collection",
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

		if err := application.Service.DeleteEntry(context.Background(), id); err != nil {
			return err
		}

		fmt.Printf("Removed entry %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
