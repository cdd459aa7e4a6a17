package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anikeep/anikeep/internal/app"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the external anime catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		results, err := application.Service.SearchCatalog(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		printCatalogResults(results)
		return nil
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the top ranked anime from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		results, err := application.Service.TopCatalog(context.Background())
		if err != nil {
			return err
		}

		printCatalogResults(results)
		return nil
	},
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the most popular anime from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		results, err := application.Service.PopularCatalog(context.Background())
		if err != nil {
			return err
		}

		printCatalogResults(results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(popularCmd)
}
