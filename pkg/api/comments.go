package api

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// Comment represents a post comment or reply
type Comment struct {
	ID             string  `json:"id"`
	PostID         string  `json:"post_id"`
	ParentID       *string `json:"parent_id,omitempty"`
	AuthorEmail    string  `json:"author_email"`
	AuthorUsername string  `json:"author_username"`
	Content        string  `json:"content"`
	IsEdited       bool    `json:"is_edited"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// CreateCommentRequest is the request to create a comment
type CreateCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id,omitempty"`
}

// UpdateCommentRequest is the request to update a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentsListResponse represents a list of comments
type CommentsListResponse struct {
	Comments []Comment `json:"comments"`
	Meta     struct {
		Total int `json:"total"`
	} `json:"meta"`
}

// CreateComment creates a new comment on a post
func CreateComment(postID string, req CreateCommentRequest) (*Comment, error) {
	logger.Debug("Creating comment", "post_id", postID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/posts/%s/comments", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Comment, nil
}

// GetComments retrieves all comments on a post. Meta.Total is the post's
// aggregate comment count, replies included.
func GetComments(postID string) (*CommentsListResponse, error) {
	logger.Debug("Getting comments", "post_id", postID)

	var response CommentsListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s/comments", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// GetCommentReplies retrieves replies to a comment
func GetCommentReplies(commentID string) (*CommentsListResponse, error) {
	logger.Debug("Getting comment replies", "comment_id", commentID)

	var response CommentsListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/comments/%s/replies", commentID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// UpdateComment updates a comment
func UpdateComment(commentID string, req UpdateCommentRequest) (*Comment, error) {
	logger.Debug("Updating comment", "comment_id", commentID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Put(fmt.Sprintf("/api/v1/comments/%s", commentID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Comment, nil
}

// DeleteComment deletes a comment
func DeleteComment(commentID string) error {
	logger.Debug("Deleting comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/comments/%s", commentID))

	return CheckResponse(resp, err)
}
