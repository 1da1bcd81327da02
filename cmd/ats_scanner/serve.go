package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/ats-scanner/internal/server"
	"github.com/jonathan/ats-scanner/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Start an HTTP server exposing POST /keywords, POST /target, POST /score and GET /health.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if flagChanged(cmd, "port") {
				env.cfg.Port = port
			}

			srv, err := server.New(server.Config{
				Port:           env.cfg.Port,
				MaxUploadBytes: env.cfg.MaxUploadBytes,
				Analyzer:       env.analyzer,
				RateLimit:      ratelimit.LoadConfig(),
				Verbose:        env.cfg.Verbose,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default 8080)")
	return cmd
}
