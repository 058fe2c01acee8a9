package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

func newImportCmd(service attendance.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path-or-url>",
		Short: "Import an attendance CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := service.ImportFile(cmd.Context(), attendance.ImportRequest{
				FilePath: args[0],
			})
			if err != nil {
				return err
			}

			fmt.Printf("Run %s finished\n", summary.RunID)
			fmt.Printf("  rows:          %d\n", summary.TotalRows)
			fmt.Printf("  inserted:      %d\n", summary.Inserted)
			fmt.Printf("  updated:       %d\n", summary.Updated)
			fmt.Printf("  skipped:       %d\n", summary.Skipped)
			fmt.Printf("  degraded:      %d\n", summary.Degraded)
			fmt.Printf("  failed chunks: %d\n", summary.FailedChunks)
			return nil
		},
	}
}
