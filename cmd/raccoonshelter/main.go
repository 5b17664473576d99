package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		jsonOut  bool
	)

	root := &cobra.Command{
		Use:          "raccoonshelter",
		Short:        "Estimate the yearly and one-time cost of a raccoon shelter",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), newLogger(cmd, logLevel), jsonOut)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	root.AddCommand(validateCmd(&logLevel))
	root.AddCommand(serveCmd(&logLevel))
	return root
}

func validateCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the computed model for non-finite or negative amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.OutOrStdout(), newLogger(cmd, *logLevel))
		},
	}
}

func serveCmd(logLevel *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cost report as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port, newLogger(cmd, *logLevel))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
