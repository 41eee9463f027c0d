// lmi: Life Morale Index scoring service.
//
// Turns a 24-item self-assessment, a weekly time map and an event-load
// rating into a single 0-10 index, over MCP, HTTP or the command line.
//
// Usage:
//
//	lmi serve              # Start MCP server (stdio transport)
//	lmi http               # Start the HTTP API
//	lmi score input.json   # Score one payload and print the result
//	lmi version --check    # Print the version, optionally check for updates
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
