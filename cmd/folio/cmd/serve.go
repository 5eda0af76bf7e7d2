package cmd

import (
	"github.com/nfrund/folio/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger := setup()
		if serveAddr != "" {
			cfg.ServerAddr = serveAddr
		}

		s, err := server.NewFromConfig(cfg, logger)
		if err != nil {
			return err
		}
		return s.Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
