package api

import (
	"github.com/wanderly/wanderly-cli/pkg/forum"
)

// ForumBackend adapts the package's HTTP calls to the forum.Backend
// interface the comment engine consumes
type ForumBackend struct{}

// NewForumBackend returns a backend wired to the shared HTTP client
func NewForumBackend() *ForumBackend {
	return &ForumBackend{}
}

func toForumComment(c Comment) forum.Comment {
	return forum.Comment{
		ID:             c.ID,
		ParentID:       c.ParentID,
		AuthorEmail:    c.AuthorEmail,
		AuthorUsername: c.AuthorUsername,
		Content:        c.Content,
		CreatedAt:      c.CreatedAt,
	}
}

func toForumComments(comments []Comment) []forum.Comment {
	out := make([]forum.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, toForumComment(c))
	}
	return out
}

func (b *ForumBackend) CommentsByPost(postID string) ([]forum.Comment, int, error) {
	resp, err := GetComments(postID)
	if err != nil {
		return nil, 0, err
	}
	return toForumComments(resp.Comments), resp.Meta.Total, nil
}

func (b *ForumBackend) CreateComment(postID, content string, parentID *string) (*forum.Comment, error) {
	created, err := CreateComment(postID, CreateCommentRequest{
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		return nil, err
	}
	c := toForumComment(*created)
	return &c, nil
}

func (b *ForumBackend) UpdateComment(commentID, content string) (*forum.Comment, error) {
	updated, err := UpdateComment(commentID, UpdateCommentRequest{Content: content})
	if err != nil {
		return nil, err
	}
	c := toForumComment(*updated)
	return &c, nil
}

func (b *ForumBackend) DeleteComment(commentID string) error {
	return DeleteComment(commentID)
}

func (b *ForumBackend) RepliesByParent(commentID string) ([]forum.Comment, error) {
	resp, err := GetCommentReplies(commentID)
	if err != nil {
		return nil, err
	}
	return toForumComments(resp.Comments), nil
}

func (b *ForumBackend) ReactionSummary(target forum.TargetType, targetID string) (*forum.ReactionSummary, error) {
	resp, err := GetReactionSummary(string(target), targetID)
	if err != nil {
		return nil, err
	}
	return &forum.ReactionSummary{
		LikeCount:    resp.LikeCount,
		DislikeCount: resp.DislikeCount,
		UserReaction: forum.ReactionKind(resp.UserReaction),
	}, nil
}

func (b *ForumBackend) AddReaction(target forum.TargetType, targetID string, kind forum.ReactionKind) error {
	return AddReaction(string(target), targetID, string(kind))
}

func (b *ForumBackend) RemoveReaction(target forum.TargetType, targetID string) error {
	return RemoveReaction(string(target), targetID)
}

func (b *ForumBackend) ReportCheck(target forum.TargetType, targetID string) (bool, error) {
	return CheckReport(string(target), targetID)
}

func (b *ForumBackend) ReportCreate(target forum.TargetType, targetID string, reasons []forum.ReportReason, description string) error {
	reasonStrs := make([]string, 0, len(reasons))
	for _, r := range reasons {
		reasonStrs = append(reasonStrs, string(r))
	}

	err := CreateReport(CreateReportRequest{
		TargetType:  string(target),
		TargetID:    targetID,
		Reasons:     reasonStrs,
		Description: description,
	})
	if IsDuplicateReport(err) {
		return forum.ErrAlreadyReported
	}
	return err
}
