package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comments on posts",
	Long:  "View, create, edit, delete, and react to comments",
}

var commentViewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "View comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().ViewComments(args[0])
	},
}

var commentCreateCmd = &cobra.Command{
	Use:   "create <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().CreateComment(args[0])
	},
}

var commentReplyCmd = &cobra.Command{
	Use:   "reply <post-id> <comment-id>",
	Short: "Reply to a comment",
	Long:  "Reply to a comment. Replying to a reply joins the same thread.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().Reply(args[0], args[1])
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <post-id> <comment-id>",
	Short: "Edit a comment you wrote",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().EditComment(args[0], args[1])
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <post-id> <comment-id>",
	Short: "Delete a comment you wrote",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().DeleteComment(args[0], args[1])
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Like a comment (run again to remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().LikeComment(args[0])
	},
}

var commentDislikeCmd = &cobra.Command{
	Use:   "dislike <comment-id>",
	Short: "Dislike a comment (run again to remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewCommentService().DislikeComment(args[0])
	},
}

func init() {
	commentCmd.AddCommand(commentViewCmd)
	commentCmd.AddCommand(commentCreateCmd)
	commentCmd.AddCommand(commentReplyCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentLikeCmd)
	commentCmd.AddCommand(commentDislikeCmd)
}
