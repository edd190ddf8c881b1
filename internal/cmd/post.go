package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var (
	postPage  int
	postLimit int
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage forum posts",
	Long:  "Browse the forum feed, create posts, and interact with them",
}

var postFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the forum feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Feed(postPage, postLimit)
	},
}

var postViewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "View a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().View(args[0])
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Create()
	},
}

var postSaveCmd = &cobra.Command{
	Use:   "save <post-id>",
	Short: "Save a post for later",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Save(args[0])
	},
}

var postUnsaveCmd = &cobra.Command{
	Use:   "unsave <post-id>",
	Short: "Remove a post from your saved list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Unsave(args[0])
	},
}

var postSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List your saved posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Saved()
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post (run again to remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().LikePost(args[0])
	},
}

var postDislikeCmd = &cobra.Command{
	Use:   "dislike <post-id>",
	Short: "Dislike a post (run again to remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().DislikePost(args[0])
	},
}

func init() {
	postFeedCmd.Flags().IntVar(&postPage, "page", 1, "Page number")
	postFeedCmd.Flags().IntVar(&postLimit, "limit", 20, "Posts per page")

	postCmd.AddCommand(postFeedCmd)
	postCmd.AddCommand(postViewCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postSaveCmd)
	postCmd.AddCommand(postUnsaveCmd)
	postCmd.AddCommand(postSavedCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postDislikeCmd)
}
