package api

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// GetTours retrieves tours, optionally filtered by destination query
func GetTours(query string, page, pageSize int) (*TourListResponse, error) {
	logger.Debug("Fetching tours", "query", query, "page", page)

	params := map[string]string{
		"page":      fmt.Sprintf("%d", page),
		"page_size": fmt.Sprintf("%d", pageSize),
	}
	if query != "" {
		params["q"] = query
	}

	var response TourListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(params).
		SetResult(&response).
		Get("/api/v1/tours")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// GetTour retrieves a single tour by id
func GetTour(tourID string) (*Tour, error) {
	logger.Debug("Fetching tour", "tour_id", tourID)

	var response struct {
		Tour Tour `json:"tour"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/tours/%s", tourID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Tour, nil
}

// SuggestTours asks the platform's AI assistant for tour suggestions
// matching a free-text request
func SuggestTours(prompt string) (*TourSuggestionsResponse, error) {
	logger.Debug("Requesting tour suggestions", "prompt", prompt)

	var response TourSuggestionsResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("q", prompt).
		SetResult(&response).
		Get("/api/v1/tours/suggest")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}
