package forum

import (
	"errors"
	"fmt"
)

// fakeBackend is a scripted in-memory stand-in for the remote API. Each
// fail* field, when set, makes the matching call return that error without
// touching state, mirroring how a real failed request changes nothing.
type fakeBackend struct {
	comments  map[string][]Comment // postID -> all comments (top-level and replies)
	replies   map[string][]Comment // parentID -> replies
	totals    map[string]int       // postID -> server-side total
	summaries map[string]*ReactionSummary
	reported  map[string]bool

	nextID int

	failCreate  error
	failUpdate  error
	failDelete  error
	failAdd     error
	failRemove  error
	failSummary error
	failReplies error
	failCheck   error
	failReport  error

	addCalls    int
	removeCalls int
	checkCalls  int
	reportCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		comments:  make(map[string][]Comment),
		replies:   make(map[string][]Comment),
		totals:    make(map[string]int),
		summaries: make(map[string]*ReactionSummary),
		reported:  make(map[string]bool),
	}
}

func targetKey(target TargetType, id string) string {
	return string(target) + "|" + id
}

func (b *fakeBackend) CommentsByPost(postID string) ([]Comment, int, error) {
	return b.comments[postID], b.totals[postID], nil
}

func (b *fakeBackend) CreateComment(postID, content string, parentID *string) (*Comment, error) {
	if b.failCreate != nil {
		return nil, b.failCreate
	}
	b.nextID++
	c := Comment{
		ID:             fmt.Sprintf("c%d", b.nextID),
		ParentID:       parentID,
		AuthorEmail:    "viewer@example.com",
		AuthorUsername: "viewer",
		Content:        content,
	}
	b.comments[postID] = append(b.comments[postID], c)
	b.totals[postID]++
	if parentID != nil {
		b.replies[*parentID] = append(b.replies[*parentID], c)
	}
	return &c, nil
}

func (b *fakeBackend) UpdateComment(commentID, content string) (*Comment, error) {
	if b.failUpdate != nil {
		return nil, b.failUpdate
	}
	return &Comment{ID: commentID, Content: content}, nil
}

func (b *fakeBackend) DeleteComment(commentID string) error {
	return b.failDelete
}

func (b *fakeBackend) RepliesByParent(commentID string) ([]Comment, error) {
	if b.failReplies != nil {
		return nil, b.failReplies
	}
	return b.replies[commentID], nil
}

func (b *fakeBackend) ReactionSummary(target TargetType, targetID string) (*ReactionSummary, error) {
	if b.failSummary != nil {
		return nil, b.failSummary
	}
	if s, ok := b.summaries[targetKey(target, targetID)]; ok {
		copied := *s
		return &copied, nil
	}
	return &ReactionSummary{}, nil
}

func (b *fakeBackend) AddReaction(target TargetType, targetID string, kind ReactionKind) error {
	b.addCalls++
	return b.failAdd
}

func (b *fakeBackend) RemoveReaction(target TargetType, targetID string) error {
	b.removeCalls++
	return b.failRemove
}

func (b *fakeBackend) ReportCheck(target TargetType, targetID string) (bool, error) {
	b.checkCalls++
	if b.failCheck != nil {
		return false, b.failCheck
	}
	return b.reported[targetKey(target, targetID)], nil
}

func (b *fakeBackend) ReportCreate(target TargetType, targetID string, reasons []ReportReason, description string) error {
	b.reportCalls++
	if b.failReport != nil {
		return b.failReport
	}
	key := targetKey(target, targetID)
	if b.reported[key] {
		return ErrAlreadyReported
	}
	b.reported[key] = true
	return nil
}

var errBoom = errors.New("boom")

func loggedIn() *Identity {
	return &Identity{Email: "viewer@example.com", Username: "viewer"}
}

func loggedOut() *Identity {
	return nil
}

func identityOf(email string) IdentityFunc {
	return func() *Identity { return &Identity{Email: email, Username: "someone"} }
}
