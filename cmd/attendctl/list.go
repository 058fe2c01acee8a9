package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

func newListCmd(service attendance.Service) *cobra.Command {
	var employeeID int
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored attendance records for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := service.ListRecords(cmd.Context(), attendance.ListFilter{
				EmployeeID: employeeID,
				Month:      month,
			})
			if err != nil {
				return err
			}

			for _, rec := range records {
				fmt.Printf("%d  %s  checkin=%s checkout=%s  deductions=%d/%d extra=%d\n",
					rec.ID,
					rec.Date,
					strOrDash(rec.ServerCheckin),
					strOrDash(rec.ServerCheckout),
					rec.FirstHalfDeductionMinutes,
					rec.SecondHalfDeductionMinutes,
					rec.ExtraTime,
				)
			}
			fmt.Printf("%d records\n", len(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&employeeID, "employee", "e", 0, "employee id (required)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "month filter, MM/YYYY")

	return cmd
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
