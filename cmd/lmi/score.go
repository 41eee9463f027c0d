package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the score command.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func newScoreCommand(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score one payload and print the result",
		Long: `Score a JSON payload read from file, or from stdin when no file
(or "-") is given, and print the full result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputJSON, outputYAML)
			}

			payload, err := readPayload(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			rt, err := c.setup()
			if err != nil {
				return err
			}
			defer rt.close()

			out, err := rt.service.Evaluate(cmd.Context(), lmi.TransportCLI, payload)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format: json or yaml")
	return cmd
}

func readPayload(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return data, nil
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}
