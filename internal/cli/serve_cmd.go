package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/focusflow/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timer and activity feed over local HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.API.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(app.Timer, app.Activities, app.Stats,
				api.WithLogger(app.logger()),
				api.WithClock(app.now()),
				api.WithPageSize(app.Config.FeedPageSize),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", addr)
			app.logger().Info("api_listening", "addr", addr)
			return srv.ListenAndServe(ctx, addr, app.Config.API.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: api.addr)")
	return cmd
}
