package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"cpusched/api"
	"cpusched/config"
)

func newServeCmd(opts *options) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling policies over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serverConfig(opts)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if cmd.Flags().Changed("port") {
				cfg.Port = opts.port
			}

			app := api.NewApp(cfg)
			log.Printf("listening on :%d", cfg.Port)

			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}

	serveCmd.Flags().IntVarP(&opts.port, "port", "p", 9095, "port to listen on")

	return serveCmd
}

// serverConfig returns the shared configuration unless --config names a
// file of its own.
func serverConfig(opts *options) (*config.SchedulerConfig, error) {
	if opts.configFile == "" {
		shared := *config.GetSchedulerConfig()
		return &shared, nil
	}

	return config.Load(opts.configFile)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "cpusched", Version)
		},
	}
}
