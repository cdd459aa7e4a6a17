package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
	"github.com/anikeep/anikeep/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection to a YAML snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		entries, err := application.Service.ListCollection(context.Background())
		if err != nil {
			return err
		}

		if err := export.WriteSnapshot(out, entries); err != nil {
			return err
		}

		fmt.Printf("Exported %d entries to %s\n", len(entries), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "anikeep-export.yaml", "output file path")
	rootCmd.AddCommand(exportCmd)
}
