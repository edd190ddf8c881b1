package forum

// ReactionSummary is the aggregate reaction state of one target: the two
// independent tallies plus the current viewer's own reaction ("" for none).
type ReactionSummary struct {
	LikeCount    int
	DislikeCount int
	UserReaction ReactionKind
}

// Backend is the remote API surface the forum core depends on. The real
// implementation lives in pkg/api; tests substitute a scripted fake.
type Backend interface {
	// CommentsByPost returns every comment on a post (top-level and replies)
	// plus the server's total count, which includes replies.
	CommentsByPost(postID string) ([]Comment, int, error)
	CreateComment(postID, content string, parentID *string) (*Comment, error)
	UpdateComment(commentID, content string) (*Comment, error)
	DeleteComment(commentID string) error
	RepliesByParent(commentID string) ([]Comment, error)

	ReactionSummary(target TargetType, targetID string) (*ReactionSummary, error)
	AddReaction(target TargetType, targetID string, kind ReactionKind) error
	RemoveReaction(target TargetType, targetID string) error

	ReportCheck(target TargetType, targetID string) (bool, error)
	// ReportCreate returns ErrAlreadyReported when the server rejects the
	// submission as a duplicate.
	ReportCreate(target TargetType, targetID string, reasons []ReportReason, description string) error
}
