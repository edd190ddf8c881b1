package api

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// StaffListResponse lists staff accounts
type StaffListResponse struct {
	Staff      []User `json:"staff"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// GetStaff retrieves staff accounts (admin only)
func GetStaff(page, pageSize int) (*StaffListResponse, error) {
	logger.Debug("Fetching staff", "page", page)

	var response StaffListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/admin/staff")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}
