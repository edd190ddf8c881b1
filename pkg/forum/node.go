package forum

import (
	"strings"

	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// CommentNode is one comment or reply in a post's tree. It owns its own
// reaction store and, for top-level comments, a lazily loaded reply list.
// The tree supports exactly one level of nesting: a reply never has visible
// children of its own.
type CommentNode struct {
	Comment

	Reaction *ReactionStore

	backend  Backend
	identity IdentityFunc
	ledger   *ReportLedger
	gate     *ModerationGate
	postID   string

	replies       []*CommentNode
	repliesLoaded bool

	editing bool
	draft   string
	saving  bool
}

func newCommentNode(c Comment, postID string, backend Backend, identity IdentityFunc, ledger *ReportLedger, gate *ModerationGate) *CommentNode {
	return &CommentNode{
		Comment:  c,
		Reaction: NewReactionStore(backend, identity, TargetComment, c.ID),
		backend:  backend,
		identity: identity,
		ledger:   ledger,
		gate:     gate,
		postID:   postID,
	}
}

// Replies returns the loaded replies and whether they have been fetched.
// Before LoadReplies succeeds the slice is nil and loaded is false, which is
// distinct from "fetched, none exist".
func (n *CommentNode) Replies() (replies []*CommentNode, loaded bool) {
	return n.replies, n.repliesLoaded
}

// LoadReplies fetches the node's replies on first expansion. Subsequent
// calls are no-ops; hiding and re-showing the list never re-fetches. An
// orphaned parent (deleted server-side) yields an empty list, not an error.
func (n *CommentNode) LoadReplies() error {
	if n.repliesLoaded {
		return nil
	}

	comments, err := n.backend.RepliesByParent(n.ID)
	if err != nil {
		if clierrors.CategorizeError(err).Type == clierrors.ErrorTypeNotFound {
			logger.Debug("Reply fetch 404, treating as empty", "comment_id", n.ID)
			comments = nil
		} else {
			return err
		}
	}

	n.replies = make([]*CommentNode, 0, len(comments))
	for _, c := range comments {
		n.replies = append(n.replies, newCommentNode(c, n.postID, n.backend, n.identity, n.ledger, n.gate))
	}
	n.repliesLoaded = true
	return nil
}

// CanModify reports whether the viewer owns this comment
func (n *CommentNode) CanModify() bool {
	return n.gate.CanModify(n.AuthorEmail)
}

// CanReport reports whether the viewer may report this comment
func (n *CommentNode) CanReport() bool {
	return n.gate.CanReport(n.AuthorEmail)
}

// Reported reports whether the viewer already reported this comment
func (n *CommentNode) Reported() bool {
	return n.ledger.IsReported(TargetComment, n.ID)
}

// Editing reports whether the node is in its edit state
func (n *CommentNode) Editing() bool {
	return n.editing
}

// Draft returns the in-progress edit text
func (n *CommentNode) Draft() string {
	return n.draft
}

// SetDraft replaces the in-progress edit text
func (n *CommentNode) SetDraft(text string) {
	n.draft = text
}

// BeginEdit moves the node into its edit state, seeding the draft with the
// current content. Only the owner may edit.
func (n *CommentNode) BeginEdit() error {
	if n.identity() == nil {
		return ErrLoginRequired
	}
	if !n.CanModify() {
		return clierrors.ForbiddenError()
	}
	n.editing = true
	n.draft = n.Content
	return nil
}

// CancelEdit leaves the edit state, discarding the draft
func (n *CommentNode) CancelEdit() {
	n.editing = false
	n.draft = ""
}

// SaveEdit submits the draft. Content only changes after the server
// confirms; on failure the node stays in its edit state with the draft
// intact so the viewer can retry.
func (n *CommentNode) SaveEdit() error {
	if !n.editing {
		return clierrors.ValidationError("comment", "not being edited")
	}
	if n.saving {
		return ErrRequestInFlight
	}

	content := strings.TrimSpace(n.draft)
	if content == "" {
		return clierrors.ValidationError("content", "cannot be empty")
	}

	n.saving = true
	defer func() { n.saving = false }()

	updated, err := n.backend.UpdateComment(n.ID, content)
	if err != nil {
		return err
	}

	n.Content = updated.Content
	n.editing = false
	n.draft = ""
	return nil
}
