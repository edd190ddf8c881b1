package service

import (
	"fmt"
	"strings"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/forum"
	"github.com/wanderly/wanderly-cli/pkg/prompter"
)

// ReportService runs the interactive report flow for posts and comments
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// ReportPost reports a forum post
func (rs *ReportService) ReportPost(postID string) error {
	return rs.run(forum.TargetPost, postID)
}

// ReportComment reports a comment
func (rs *ReportService) ReportComment(commentID string) error {
	return rs.run(forum.TargetComment, commentID)
}

func (rs *ReportService) run(target forum.TargetType, targetID string) error {
	backend := api.NewForumBackend()
	ledger := forum.NewReportLedger(backend)
	ledger.CheckMany(target, []string{targetID})

	flow := forum.NewReportFlow(backend, currentIdentity(), ledger, target, targetID)

	kind := strings.ToLower(string(target))

	if flow.AlreadyReported() {
		formatter.PrintInfo("You have already reported this %s", kind)
		return nil
	}

	if err := flow.Open(); err != nil {
		return reportForumError("report", err)
	}

	reasons := forum.ReportReasons()
	labels := make([]string, len(reasons))
	for i, r := range reasons {
		labels[i] = string(r)
	}

	picked, err := prompter.PromptMultiSelect("Why are you reporting this?", labels)
	if err != nil {
		return err
	}
	for _, idx := range picked {
		flow.ToggleReason(reasons[idx])
	}

	description, err := prompter.PromptString(
		fmt.Sprintf("Additional details (optional, max %d chars): ", forum.MaxReportDescription))
	if err != nil {
		return err
	}
	flow.SetDescription(strings.TrimSpace(description))

	if err := flow.Submit(); err != nil {
		return reportForumError("report", err)
	}

	if flow.State() == forum.FlowDuplicate {
		formatter.PrintInfo("You had already reported this %s; nothing more to do", kind)
		return nil
	}
	formatter.PrintSuccess("Report submitted. Thank you for helping keep the community safe.")
	return nil
}
