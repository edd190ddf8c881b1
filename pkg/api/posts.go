package api

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// CreatePostRequest is the request to create a forum post
type CreatePostRequest struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// GetPosts retrieves the forum feed
func GetPosts(page, pageSize int) (*PostListResponse, error) {
	logger.Debug("Fetching posts", "page", page)

	var response PostListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/posts")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// GetPost retrieves a single post
func GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Post, nil
}

// CreatePost creates a new forum post
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post")

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/posts")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Post, nil
}

// SavePost bookmarks a post for the current user
func SavePost(postID string) error {
	logger.Debug("Saving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	return CheckResponse(resp, err)
}

// UnsavePost removes a post from the current user's saved list
func UnsavePost(postID string) error {
	logger.Debug("Unsaving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	return CheckResponse(resp, err)
}

// GetSavedPosts retrieves the current user's saved posts
func GetSavedPosts(page, pageSize int) (*PostListResponse, error) {
	logger.Debug("Fetching saved posts", "page", page)

	var response PostListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/posts/saved")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}
