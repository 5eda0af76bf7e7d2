package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio portfolio site tool",
	Long: `Folio serves an artwork portfolio from works.json and profile.json and
prepares the images and metadata it shows.

Available commands:
  serve            Run the web server
  preprocess       Compress source images and update works.json
  validate         Load the site data and report what the pages will show
  list-services    List the services registered in the dependency registry
  version          Print the version

Use "folio [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command. Commands see a context that is
// cancelled on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and installs the default logger.
func setup() (*config.Config, *slog.Logger) {
	cfg := config.New()
	logger := logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
	return cfg, logger
}
