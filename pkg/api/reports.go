package api

import (
	"fmt"
	"time"

	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// Report represents a content report
type Report struct {
	ID          string     `json:"id"`
	TargetType  string     `json:"target_type"` // POST, COMMENT
	TargetID    string     `json:"target_id"`
	Reasons     []string   `json:"reasons"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"` // pending, reviewing, resolved, dismissed
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// CreateReportRequest is the request to submit a report
type CreateReportRequest struct {
	TargetType  string   `json:"target_type"`
	TargetID    string   `json:"target_id"`
	Reasons     []string `json:"reasons"`
	Description string   `json:"description,omitempty"`
}

type ReportListResponse struct {
	Reports    []Report `json:"reports"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

// CheckReport asks whether the current viewer already reported a target
func CheckReport(targetType, targetID string) (bool, error) {
	logger.Debug("Checking report status", "target_type", targetType, "target_id", targetID)

	var response struct {
		Reported bool `json:"reported"`
	}

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"target_type": targetType,
			"target_id":   targetID,
		}).
		SetResult(&response).
		Get("/api/v1/reports/check")

	if err != nil {
		return false, err
	}

	if !resp.IsSuccess() {
		return false, ParseError(resp)
	}

	return response.Reported, nil
}

// CreateReport submits a report. A duplicate submission comes back as an
// APIError with CodeDuplicateReport.
func CreateReport(req CreateReportRequest) error {
	logger.Debug("Submitting report", "target_type", req.TargetType, "target_id", req.TargetID)

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Post("/api/v1/reports")

	return CheckResponse(resp, err)
}

// GetReports retrieves the moderation queue (staff only)
func GetReports(status string, page, pageSize int) (*ReportListResponse, error) {
	logger.Debug("Fetching reports", "status", status, "page", page)

	params := map[string]string{
		"page":      fmt.Sprintf("%d", page),
		"page_size": fmt.Sprintf("%d", pageSize),
	}

	if status != "" {
		params["status"] = status
	}

	var response ReportListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(params).
		SetResult(&response).
		Get("/api/v1/admin/reports")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}
