// Command medtrackctl drives the MedTrack API from a terminal: it keeps a
// login session on disk and edits admin records with the same editor as the
// portal's control center.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "develop"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var options cliOptions

	cmd := &cobra.Command{
		Use:           "medtrackctl",
		Short:         "Operator CLI for the MedTrack API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&options.Home, "home", "", "Directory holding the CLI session (default $MEDTRACK_HOME or ~/.medtrack)")
	cmd.PersistentFlags().StringVar(&options.APIBaseUrl, "api", "", "MedTrack API base URL (default $MEDTRACK_API_BASE_URL)")
	cmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "Print service logs")

	cmd.AddCommand(
		loginCmd(&options),
		logoutCmd(&options),
		whoamiCmd(&options),
		recordsCmd(&options),
		usersCmd(&options),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "medtrackctl version %s\n", Version)
			},
		},
	)
	return cmd
}
