package main

import (
	lmiserver "github.com/HendryAvila/lifemorale/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdin/stdout.

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "lmi": {
        "command": "lmi",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := c.setup()
			if err != nil {
				return err
			}
			defer rt.close()

			s := lmiserver.New(rt.service)
			rt.logger.Info("mcp server starting",
				zap.String("version", lmiserver.Version),
				zap.Bool("strict", rt.service.Strict()),
			)
			// ServeStdio handles SIGINT/SIGTERM itself.
			return server.ServeStdio(s)
		},
	}
}
