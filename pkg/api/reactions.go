package api

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// ReactionSummaryResponse is one target's aggregate reaction state. The
// server keeps likes and dislikes as independent rows; exclusivity per
// viewer is the client's business.
type ReactionSummaryResponse struct {
	TargetType   string `json:"target_type"`
	TargetID     string `json:"target_id"`
	LikeCount    int    `json:"like_count"`
	DislikeCount int    `json:"dislike_count"`
	UserReaction string `json:"user_reaction,omitempty"` // LIKE, DISLIKE, or absent
}

// ReactionRequest is the request to add or replace a reaction
type ReactionRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Kind       string `json:"kind"`
}

// GetReactionSummary retrieves a target's counts and the viewer's reaction
func GetReactionSummary(targetType, targetID string) (*ReactionSummaryResponse, error) {
	logger.Debug("Fetching reaction summary", "target_type", targetType, "target_id", targetID)

	var response ReactionSummaryResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("target_type", targetType).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/reactions/%s", targetID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// AddReaction adds (or replaces) the viewer's reaction on a target
func AddReaction(targetType, targetID, kind string) error {
	logger.Debug("Adding reaction", "target_type", targetType, "target_id", targetID, "kind", kind)

	req := ReactionRequest{
		TargetType: targetType,
		TargetID:   targetID,
		Kind:       kind,
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Post("/api/v1/reactions")

	return CheckResponse(resp, err)
}

// RemoveReaction removes the viewer's reaction from a target
func RemoveReaction(targetType, targetID string) error {
	logger.Debug("Removing reaction", "target_type", targetType, "target_id", targetID)

	resp, err := client.GetClient().
		R().
		SetQueryParam("target_type", targetType).
		Delete(fmt.Sprintf("/api/v1/reactions/%s", targetID))

	return CheckResponse(resp, err)
}
