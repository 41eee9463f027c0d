package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/lifemorale/internal/httpapi"
	lmiserver "github.com/HendryAvila/lifemorale/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newHTTPCommand(c *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Start the HTTP API",
		Long: `Serve POST /api/lmi, GET /healthz and GET /metrics until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.setup()
			if err != nil {
				return err
			}
			defer rt.close()

			settings := rt.settings.HTTP
			if addr != "" {
				settings.Addr = addr
			}

			if !settings.Debug {
				gin.SetMode(gin.ReleaseMode)
			}
			srv, err := httpapi.NewServer(httpapi.Options{
				Service:  rt.service,
				Settings: settings,
				Gatherer: rt.registry,
				Logger:   rt.logger,
				Version:  lmiserver.Version,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides http.addr)")
	return cmd
}
