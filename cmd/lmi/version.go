package main

import (
	"fmt"

	lmiserver "github.com/HendryAvila/lifemorale/internal/server"
	"github.com/HendryAvila/lifemorale/internal/updater"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lmi v%s\n", lmiserver.Version)
			if !check {
				return nil
			}

			result, err := updater.NewChecker().Check(cmd.Context(), lmiserver.Version)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Update check failed: %v\n", err)
				return nil
			}
			if result.UpdateAvailable {
				fmt.Fprintf(out, "Update available: v%s -> v%s\n  Release: %s\n",
					result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
				return nil
			}
			fmt.Fprintf(out, "Already at the latest version (v%s)\n", result.LatestVersion)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return cmd
}
