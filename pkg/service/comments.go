package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/config"
	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/forum"
	"github.com/wanderly/wanderly-cli/pkg/logger"
	"github.com/wanderly/wanderly-cli/pkg/prompter"
)

// CommentService drives the interactive comment flows on top of the forum
// comment engine
type CommentService struct{}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{}
}

// newTree builds a comment tree for a post, wired to the live API backend
// and the stored identity
func (cs *CommentService) newTree(postID string) *forum.CommentTree {
	backend := api.NewForumBackend()
	identity := currentIdentity()
	ledger := forum.NewReportLedger(backend)

	tree := forum.NewCommentTree(postID, backend, identity, ledger)
	if limit := config.GetInt("forum.visible_comments"); limit > 0 {
		tree.SetVisibleLimit(limit)
	}
	tree.OnLoginRequired = func() {
		formatter.PrintWarning("You need to log in first: wanderly auth login")
	}
	return tree
}

// ViewComments displays a post's comments: the first few by default, all of
// them on request
func (cs *CommentService) ViewComments(postID string) error {
	tree := cs.newTree(postID)

	if err := tree.Load(); err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	tree.PrimeReports()

	if len(tree.All()) == 0 {
		fmt.Println("No comments yet")
		return nil
	}

	formatter.PrintInfo("Comments (%d total)", tree.Total())
	fmt.Println()
	cs.render(tree)

	if len(tree.All()) > len(tree.Visible()) {
		showAll, err := prompter.PromptConfirm(
			fmt.Sprintf("Show all %d comments?", len(tree.All())))
		if err != nil {
			return err
		}
		if showAll {
			tree.Reveal()
			fmt.Println()
			cs.render(tree)
		}
	}

	return nil
}

func (cs *CommentService) render(tree *forum.CommentTree) {
	for i, node := range tree.Visible() {
		if err := node.LoadReplies(); err != nil {
			logger.Debug("Reply fetch failed", "comment_id", node.ID, "error", err)
		}
		cs.renderNode(i+1, node)
	}
}

func (cs *CommentService) renderNode(position int, node *forum.CommentNode) {
	reaction := node.Reaction.State()
	if !node.Reaction.Loaded() {
		reaction = node.Reaction.Load()
	}

	marker := ""
	if node.Reported() {
		marker = " [reported]"
	}

	fmt.Printf("[%d] %s (@%s)%s\n", position, node.ID, node.AuthorUsername, marker)
	fmt.Printf("    %s\n", truncate(node.Content, 70))
	fmt.Printf("    +%d / -%d", reaction.LikeCount, reaction.DislikeCount)
	if reaction.UserReaction != "" {
		fmt.Printf("  (you: %s)", reaction.UserReaction)
	}
	fmt.Printf("    %s\n", node.CreatedAt)

	if replies, loaded := node.Replies(); loaded {
		for j, reply := range replies {
			fmt.Printf("      └ [%d.%d] %s (@%s)\n", position, j+1, reply.ID, reply.AuthorUsername)
			fmt.Printf("         %s\n", truncate(reply.Content, 65))
		}
	}
	fmt.Println()
}

// CreateComment creates a top-level comment on a post
func (cs *CommentService) CreateComment(postID string) error {
	content, err := prompter.PromptString("Comment text: ")
	if err != nil {
		return err
	}

	tree := cs.newTree(postID)
	tree.SetDraft(content)

	node, err := tree.CreateTopLevel(tree.Draft())
	if err != nil {
		return reportForumError("create comment", err)
	}

	formatter.PrintSuccess("Comment created")
	formatter.PrintKeyValue(map[string]interface{}{
		"Comment ID": node.ID,
		"Content":    truncate(node.Content, 50),
	})
	return nil
}

// Reply creates a reply under a comment. Replying to a reply attaches to
// the same thread; threads are one level deep.
func (cs *CommentService) Reply(postID, commentID string) error {
	content, err := prompter.PromptString("Reply text: ")
	if err != nil {
		return err
	}

	tree := cs.newTree(postID)
	if err := tree.Load(); err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	node, err := tree.ReplyTo(commentID, content)
	if err != nil {
		return reportForumError("reply", err)
	}

	formatter.PrintSuccess("Reply posted")
	formatter.PrintKeyValue(map[string]interface{}{
		"Reply ID":  node.ID,
		"Parent ID": *node.ParentID,
	})
	return nil
}

// EditComment edits a comment the viewer owns
func (cs *CommentService) EditComment(postID, commentID string) error {
	tree := cs.newTree(postID)
	if err := tree.Load(); err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	node := tree.Resolve(commentID)
	if node == nil {
		return fmt.Errorf("comment not found: %s", commentID)
	}

	if err := node.BeginEdit(); err != nil {
		return reportForumError("edit comment", err)
	}

	fmt.Printf("Current text: %s\n", node.Content)
	draft, err := prompter.PromptString("New text: ")
	if err != nil {
		return err
	}
	node.SetDraft(draft)

	if err := node.SaveEdit(); err != nil {
		node.CancelEdit()
		return reportForumError("edit comment", err)
	}

	formatter.PrintSuccess("Comment updated")
	return nil
}

// DeleteComment deletes a comment after explicit confirmation
func (cs *CommentService) DeleteComment(postID, commentID string) error {
	confirm, err := prompter.PromptConfirm("Are you sure you want to delete this comment?")
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Println("Deletion cancelled")
		return nil
	}

	tree := cs.newTree(postID)
	if err := tree.Load(); err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	if err := tree.Delete(commentID); err != nil {
		return reportForumError("delete comment", err)
	}

	formatter.PrintSuccess("Comment deleted")
	return nil
}

// LikeComment toggles a like on a comment
func (cs *CommentService) LikeComment(commentID string) error {
	return cs.react(commentID, forum.ReactionLike)
}

// DislikeComment toggles a dislike on a comment
func (cs *CommentService) DislikeComment(commentID string) error {
	return cs.react(commentID, forum.ReactionDislike)
}

func (cs *CommentService) react(commentID string, kind forum.ReactionKind) error {
	store := forum.NewReactionStore(api.NewForumBackend(), currentIdentity(), forum.TargetComment, commentID)
	store.Load()

	state, err := store.SetReaction(kind)
	if err != nil {
		return reportForumError("react", err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Comment ID":    commentID,
		"Likes":         state.LikeCount,
		"Dislikes":      state.DislikeCount,
		"Your reaction": string(state.UserReaction),
	})
	return nil
}

// reportForumError maps the core's signals onto user-facing errors
func reportForumError(action string, err error) error {
	if errors.Is(err, forum.ErrLoginRequired) {
		return clierrors.LoginRequiredError(action)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// truncate shortens s to max characters. Rune-aware, so multibyte text is
// never cut mid-character.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
