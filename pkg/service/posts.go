package service

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/forum"
	"github.com/wanderly/wanderly-cli/pkg/output"
	"github.com/wanderly/wanderly-cli/pkg/prompter"
)

// PostService handles forum post browsing and interaction
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// Feed lists forum posts, newest first
func (ps *PostService) Feed(page, limit int) error {
	attachSession()

	resp, err := api.GetPosts(page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}

	if len(resp.Posts) == 0 {
		fmt.Println("No posts found")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Posts)
	}

	headers := []string{"ID", "Title", "Author", "Comments", "Likes", "Created"}
	rows := make([][]string, 0, len(resp.Posts))
	for _, post := range resp.Posts {
		rows = append(rows, []string{
			post.ID,
			truncate(post.Title, 40),
			post.AuthorUsername,
			fmt.Sprintf("%d", post.CommentCount),
			fmt.Sprintf("%d", post.LikeCount),
			post.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}

// View shows a single post with its reaction state and comments
func (ps *PostService) View(postID string) error {
	attachSession()

	post, err := api.GetPost(postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	reactions := forum.NewReactionStore(api.NewForumBackend(), currentIdentity(), forum.TargetPost, postID)
	reactions.Load()
	state := reactions.State()

	formatter.PrintInfo("%s", post.Title)
	fmt.Printf("by @%s on %s\n\n", post.AuthorUsername, post.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(post.Content)
	fmt.Printf("\n+%d / -%d", state.LikeCount, state.DislikeCount)
	if state.UserReaction != "" {
		fmt.Printf("  (you: %s)", state.UserReaction)
	}
	fmt.Printf("    %d comments\n\n", post.CommentCount)

	return NewCommentService().ViewComments(postID)
}

// Create creates a new forum post interactively
func (ps *PostService) Create() error {
	if attachSession() == nil {
		return reportForumError("create a post", forum.ErrLoginRequired)
	}

	title, err := prompter.PromptString("Title: ")
	if err != nil {
		return err
	}
	content, err := prompter.PromptString("Content: ")
	if err != nil {
		return err
	}

	post, err := api.CreatePost(api.CreatePostRequest{Title: title, Content: content})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	formatter.PrintSuccess("Post created")
	formatter.PrintKeyValue(map[string]interface{}{
		"Post ID": post.ID,
		"Title":   post.Title,
	})
	return nil
}

// Save bookmarks a post for later
func (ps *PostService) Save(postID string) error {
	if attachSession() == nil {
		return reportForumError("save a post", forum.ErrLoginRequired)
	}

	if err := api.SavePost(postID); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	formatter.PrintSuccess("Post saved")
	return nil
}

// Unsave removes a post from the viewer's saved list
func (ps *PostService) Unsave(postID string) error {
	if attachSession() == nil {
		return reportForumError("unsave a post", forum.ErrLoginRequired)
	}

	if err := api.UnsavePost(postID); err != nil {
		return fmt.Errorf("failed to unsave post: %w", err)
	}
	formatter.PrintSuccess("Post removed from saved")
	return nil
}

// Saved lists the viewer's saved posts
func (ps *PostService) Saved() error {
	if attachSession() == nil {
		return reportForumError("list saved posts", forum.ErrLoginRequired)
	}

	resp, err := api.GetSavedPosts(1, 50)
	if err != nil {
		return fmt.Errorf("failed to fetch saved posts: %w", err)
	}

	if len(resp.Posts) == 0 {
		fmt.Println("No saved posts")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Posts)
	}

	headers := []string{"ID", "Title", "Author", "Created"}
	rows := make([][]string, 0, len(resp.Posts))
	for _, post := range resp.Posts {
		rows = append(rows, []string{
			post.ID, truncate(post.Title, 40), post.AuthorUsername,
			post.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}

// LikePost toggles a like on a post
func (ps *PostService) LikePost(postID string) error {
	return ps.react(postID, forum.ReactionLike)
}

// DislikePost toggles a dislike on a post
func (ps *PostService) DislikePost(postID string) error {
	return ps.react(postID, forum.ReactionDislike)
}

func (ps *PostService) react(postID string, kind forum.ReactionKind) error {
	store := forum.NewReactionStore(api.NewForumBackend(), currentIdentity(), forum.TargetPost, postID)
	store.Load()

	state, err := store.SetReaction(kind)
	if err != nil {
		return reportForumError("react", err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Post ID":       postID,
		"Likes":         state.LikeCount,
		"Dislikes":      state.DislikeCount,
		"Your reaction": string(state.UserReaction),
	})
	return nil
}
