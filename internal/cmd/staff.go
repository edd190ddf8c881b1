package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var (
	staffPage    int
	staffLimit   int
	reportStatus string
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Staff and moderation tools",
	Long:  "Review the report queue and list staff accounts (staff only)",
}

var staffReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show the content report queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewStaffService().ReportQueue(reportStatus, staffPage, staffLimit)
	},
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewStaffService().List(staffPage, staffLimit)
	},
}

func init() {
	staffReportsCmd.Flags().StringVar(&reportStatus, "status", "", "Filter by status: pending, reviewing, resolved, dismissed")
	staffCmd.PersistentFlags().IntVar(&staffPage, "page", 1, "Page number")
	staffCmd.PersistentFlags().IntVar(&staffLimit, "limit", 20, "Results per page")

	staffCmd.AddCommand(staffReportsCmd)
	staffCmd.AddCommand(staffListCmd)
}
