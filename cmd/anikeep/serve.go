package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anikeep/anikeep/internal/config"
	"github.com/anikeep/anikeep/internal/logger"
	"github.com/anikeep/anikeep/internal/server"
	"github.com/anikeep/anikeep/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the collection over HTTP",
	Long: `Serve runs the backend the remote substrate talks to: the /animes
collection resource backed by the local database file. Clients on other
devices point their remote_url at this server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := viper.GetString("listen_addr")
		if addr == "" {
			addr, _ = cmd.Flags().GetString("addr")
		}

		log := logger.NewLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		boltStore, err := store.NewBoltStore(log, cfg.DBPath)
		if err != nil {
			return err
		}
		defer boltStore.Close()

		return server.New(log, boltStore).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
