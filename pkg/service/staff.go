package service

import (
	"fmt"
	"strings"

	"github.com/wanderly/wanderly-cli/pkg/api"
	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/output"
)

// StaffService exposes the moderation surfaces available to staff accounts
type StaffService struct{}

// NewStaffService creates a new staff service
func NewStaffService() *StaffService {
	return &StaffService{}
}

func (ss *StaffService) requireStaff() error {
	creds := attachSession()
	if creds == nil {
		return clierrors.LoginRequiredError("access staff tools")
	}
	if !creds.IsStaff() {
		return clierrors.ForbiddenError().WithSuggestion("Staff tools require a staff or admin account")
	}
	return nil
}

// ReportQueue lists submitted content reports, optionally by status
func (ss *StaffService) ReportQueue(status string, page, limit int) error {
	if err := ss.requireStaff(); err != nil {
		return err
	}

	resp, err := api.GetReports(status, page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch reports: %w", err)
	}

	if len(resp.Reports) == 0 {
		fmt.Println("No reports in the queue")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Reports)
	}

	headers := []string{"ID", "Target", "Reasons", "Status", "Created"}
	rows := make([][]string, 0, len(resp.Reports))
	for _, report := range resp.Reports {
		rows = append(rows, []string{
			report.ID,
			fmt.Sprintf("%s/%s", report.TargetType, report.TargetID),
			truncate(strings.Join(report.Reasons, ","), 30),
			report.Status,
			report.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}

// List shows staff accounts (admin only)
func (ss *StaffService) List(page, limit int) error {
	if err := ss.requireStaff(); err != nil {
		return err
	}

	resp, err := api.GetStaff(page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch staff: %w", err)
	}

	if len(resp.Staff) == 0 {
		fmt.Println("No staff accounts found")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Staff)
	}

	headers := []string{"ID", "Username", "Email", "Role"}
	rows := make([][]string, 0, len(resp.Staff))
	for _, user := range resp.Staff {
		rows = append(rows, []string{user.ID, user.Username, user.Email, user.Role})
	}
	formatter.PrintTable(headers, rows)
	return nil
}
