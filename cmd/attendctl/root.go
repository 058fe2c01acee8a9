package main

import (
	"github.com/spf13/cobra"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

func newRootCmd(service attendance.Service) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attendctl",
		Short: "Attendance ingest operations",
		Long: `Run the attendance CSV ingest pipeline without the HTTP server.
Useful for backfills and one-off imports from an operator's shell.`,
	}

	rootCmd.AddCommand(
		newImportCmd(service),
		newListCmd(service),
	)

	return rootCmd
}
