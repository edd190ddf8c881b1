package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report content to moderators",
	Long:  "Flag posts or comments that break the community guidelines",
}

var reportPostCmd = &cobra.Command{
	Use:   "post <post-id>",
	Short: "Report a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewReportService().ReportPost(args[0])
	},
}

var reportCommentCmd = &cobra.Command{
	Use:   "comment <comment-id>",
	Short: "Report a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewReportService().ReportComment(args[0])
	},
}

func init() {
	reportCmd.AddCommand(reportPostCmd)
	reportCmd.AddCommand(reportCommentCmd)
}
