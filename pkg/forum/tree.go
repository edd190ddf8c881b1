package forum

import (
	"strings"

	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// DefaultVisibleComments is how many top-level comments show before the
// viewer asks for the rest
const DefaultVisibleComments = 3

// CommentTree owns the top-level comment list for one post. The whole
// top-level set is fetched once and revealed progressively client-side;
// replies load per node on demand. Creation and deletion at any level move
// the post's total count, which is pushed out through OnCountChange.
type CommentTree struct {
	backend  Backend
	identity IdentityFunc
	ledger   *ReportLedger
	gate     *ModerationGate

	postID   string
	comments []*CommentNode // newest first, as returned by the server
	total    int            // post-level count, replies included

	visibleLimit int
	expanded     bool
	draft        string

	// OnCountChange fires whenever the post's aggregate comment count
	// changes (create or delete at any nesting level).
	OnCountChange func(total int)
	// OnLoginRequired fires when an unauthenticated viewer attempts a
	// gated action.
	OnLoginRequired func()
}

// NewCommentTree creates a tree for one post. The ledger is shared with
// every node so report state is visible everywhere at once.
func NewCommentTree(postID string, backend Backend, identity IdentityFunc, ledger *ReportLedger) *CommentTree {
	return &CommentTree{
		backend:      backend,
		identity:     identity,
		ledger:       ledger,
		gate:         NewModerationGate(identity),
		postID:       postID,
		visibleLimit: DefaultVisibleComments,
	}
}

// SetVisibleLimit overrides how many comments show before reveal
func (t *CommentTree) SetVisibleLimit(n int) {
	if n > 0 {
		t.visibleLimit = n
	}
}

// Load fetches the post's comments, keeps the top-level ones (replies are
// fetched per node when expanded), and reports the server's total back
// through OnCountChange.
func (t *CommentTree) Load() error {
	comments, total, err := t.backend.CommentsByPost(t.postID)
	if err != nil {
		return err
	}

	t.comments = t.comments[:0]
	for _, c := range comments {
		if c.IsReply() {
			continue
		}
		t.comments = append(t.comments, newCommentNode(c, t.postID, t.backend, t.identity, t.ledger, t.gate))
	}

	t.total = total
	t.expanded = false
	t.notifyCount()

	logger.Debug("Comment tree loaded", "post_id", t.postID,
		"top_level", len(t.comments), "total", total)
	return nil
}

// PrimeReports bulk-checks the viewer's report state for every loaded
// top-level comment
func (t *CommentTree) PrimeReports() {
	if t.identity() == nil {
		return
	}
	ids := make([]string, 0, len(t.comments))
	for _, n := range t.comments {
		ids = append(ids, n.ID)
	}
	t.ledger.CheckMany(TargetComment, ids)
}

// Visible returns the comments currently shown: the first few, or all of
// them once revealed
func (t *CommentTree) Visible() []*CommentNode {
	if t.expanded || len(t.comments) <= t.visibleLimit {
		return t.comments
	}
	return t.comments[:t.visibleLimit]
}

// Reveal toggles between the initial window and the full list. Pure view
// state; no network.
func (t *CommentTree) Reveal() {
	t.expanded = !t.expanded
}

// Expanded reports whether the full list is showing
func (t *CommentTree) Expanded() bool {
	return t.expanded
}

// All returns every loaded top-level comment
func (t *CommentTree) All() []*CommentNode {
	return t.comments
}

// Total returns the post-level comment count, replies included
func (t *CommentTree) Total() int {
	return t.total
}

// Draft returns the top-level compose draft
func (t *CommentTree) Draft() string {
	return t.draft
}

// SetDraft replaces the top-level compose draft
func (t *CommentTree) SetDraft(text string) {
	t.draft = text
}

// CreateTopLevel submits a new top-level comment and prepends the confirmed
// node to match the newest-first order without a re-fetch. The compose
// draft clears only on success, so a failed submit can be retried as-is.
func (t *CommentTree) CreateTopLevel(content string) (*CommentNode, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, clierrors.ValidationError("content", "cannot be empty")
	}
	if t.identity() == nil {
		t.notifyLoginRequired()
		return nil, ErrLoginRequired
	}

	created, err := t.backend.CreateComment(t.postID, content, nil)
	if err != nil {
		return nil, err
	}

	node := newCommentNode(*created, t.postID, t.backend, t.identity, t.ledger, t.gate)
	t.comments = append([]*CommentNode{node}, t.comments...)
	t.total++
	t.draft = ""
	t.notifyCount()
	return node, nil
}

// ReplyTo submits a reply under the given comment. Replying to a reply
// attaches to that reply's parent, keeping the tree one level deep. Replies
// count toward the same post total as top-level comments.
func (t *CommentTree) ReplyTo(commentID, content string) (*CommentNode, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, clierrors.ValidationError("content", "cannot be empty")
	}
	if t.identity() == nil {
		t.notifyLoginRequired()
		return nil, ErrLoginRequired
	}

	parent := t.topLevelParent(commentID)
	if parent == nil {
		return nil, clierrors.NotFoundError("Comment", commentID)
	}
	if !parent.repliesLoaded {
		if err := parent.LoadReplies(); err != nil {
			return nil, err
		}
	}

	created, err := t.backend.CreateComment(t.postID, content, &parent.ID)
	if err != nil {
		return nil, err
	}

	node := newCommentNode(*created, t.postID, t.backend, t.identity, t.ledger, t.gate)
	parent.replies = append([]*CommentNode{node}, parent.replies...)
	t.total++
	t.notifyCount()
	return node, nil
}

// Delete removes a comment or reply after server confirmation. Only the
// node's presence in its immediate parent collection is affected; whether
// the server cascades to replies is its own business.
func (t *CommentTree) Delete(commentID string) error {
	if t.identity() == nil {
		t.notifyLoginRequired()
		return ErrLoginRequired
	}

	node := t.Resolve(commentID)
	if node == nil {
		return clierrors.NotFoundError("Comment", commentID)
	}
	if !node.CanModify() {
		return clierrors.ForbiddenError()
	}

	if err := t.backend.DeleteComment(commentID); err != nil {
		return err
	}

	t.remove(commentID)
	return nil
}

// Find locates a loaded node by id, searching top-level comments and any
// loaded replies
func (t *CommentTree) Find(commentID string) *CommentNode {
	for _, n := range t.comments {
		if n.ID == commentID {
			return n
		}
		for _, r := range n.replies {
			if r.ID == commentID {
				return r
			}
		}
	}
	return nil
}

// Resolve locates a node by id like Find, additionally fetching reply
// lists that have not been loaded yet. A fetch failure on one node skips
// it rather than aborting the search.
func (t *CommentTree) Resolve(commentID string) *CommentNode {
	if n := t.Find(commentID); n != nil {
		return n
	}
	for _, n := range t.comments {
		if n.repliesLoaded {
			continue
		}
		if err := n.LoadReplies(); err != nil {
			logger.Debug("Reply fetch failed while resolving", "comment_id", n.ID, "error", err)
			continue
		}
		for _, r := range n.replies {
			if r.ID == commentID {
				return r
			}
		}
	}
	return nil
}

// topLevelParent resolves the top-level node a reply to commentID should
// attach to, fetching unloaded reply lists as needed
func (t *CommentTree) topLevelParent(commentID string) *CommentNode {
	for _, n := range t.comments {
		if n.ID == commentID {
			return n
		}
	}
	if target := t.Resolve(commentID); target != nil && target.ParentID != nil {
		for _, n := range t.comments {
			if n.ID == *target.ParentID {
				return n
			}
		}
	}
	return nil
}

func (t *CommentTree) remove(commentID string) {
	for i, n := range t.comments {
		if n.ID == commentID {
			t.comments = append(t.comments[:i], t.comments[i+1:]...)
			t.total--
			t.notifyCount()
			return
		}
		for j, r := range n.replies {
			if r.ID == commentID {
				n.replies = append(n.replies[:j], n.replies[j+1:]...)
				t.total--
				t.notifyCount()
				return
			}
		}
	}
}

func (t *CommentTree) notifyCount() {
	if t.OnCountChange != nil {
		t.OnCountChange(t.total)
	}
}

func (t *CommentTree) notifyLoginRequired() {
	if t.OnLoginRequired != nil {
		t.OnLoginRequired()
	}
}
