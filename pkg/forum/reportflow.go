package forum

import (
	"errors"
	"strings"
	"unicode/utf8"

	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// FlowState is where a report submission currently stands
type FlowState string

const (
	FlowClosed          FlowState = "closed"
	FlowReasonSelection FlowState = "reasonSelection"
	FlowSubmitting      FlowState = "submitting"
	FlowSuccess         FlowState = "success"
	FlowDuplicate       FlowState = "duplicate"
	FlowError           FlowState = "error"
)

// ReportDraft is the transient content of an open report: the selected
// reasons and an optional description. Discarded on submit or cancel.
type ReportDraft struct {
	Reasons     []ReportReason
	Description string
}

// ReportFlow drives one report submission: open, pick reasons, submit,
// land on success, duplicate, or error. A duplicate response from the
// server marks the ledger like a success but skips the acknowledgment;
// a real error preserves the draft so the viewer need not re-select.
type ReportFlow struct {
	backend  Backend
	identity IdentityFunc
	ledger   *ReportLedger

	target   TargetType
	targetID string

	state   FlowState
	draft   ReportDraft
	lastErr error
}

// NewReportFlow creates a closed flow for one target
func NewReportFlow(backend Backend, identity IdentityFunc, ledger *ReportLedger, target TargetType, targetID string) *ReportFlow {
	return &ReportFlow{
		backend:  backend,
		identity: identity,
		ledger:   ledger,
		target:   target,
		targetID: targetID,
		state:    FlowClosed,
	}
}

// State returns the flow's current state
func (f *ReportFlow) State() FlowState {
	return f.state
}

// Draft returns the current draft
func (f *ReportFlow) Draft() ReportDraft {
	return f.draft
}

// Err returns the failure from the last submit attempt, if any
func (f *ReportFlow) Err() error {
	return f.lastErr
}

// AlreadyReported reports whether the ledger already holds this target
func (f *ReportFlow) AlreadyReported() bool {
	return f.ledger.IsReported(f.target, f.targetID)
}

// Open moves the flow into reason selection. Requires a logged-in viewer.
func (f *ReportFlow) Open() error {
	if f.identity() == nil {
		return ErrLoginRequired
	}
	f.state = FlowReasonSelection
	f.draft = ReportDraft{}
	f.lastErr = nil
	return nil
}

// ToggleReason adds or removes a reason from the draft
func (f *ReportFlow) ToggleReason(reason ReportReason) {
	for i, r := range f.draft.Reasons {
		if r == reason {
			f.draft.Reasons = append(f.draft.Reasons[:i], f.draft.Reasons[i+1:]...)
			return
		}
	}
	f.draft.Reasons = append(f.draft.Reasons, reason)
}

// SetReasons replaces the draft's reason set
func (f *ReportFlow) SetReasons(reasons []ReportReason) {
	f.draft.Reasons = reasons
}

// SetDescription replaces the draft's free-text description
func (f *ReportFlow) SetDescription(text string) {
	f.draft.Description = text
}

// Submit validates and sends the report. Validation failures never reach
// the network and leave the flow in reason selection.
func (f *ReportFlow) Submit() error {
	if f.state != FlowReasonSelection && f.state != FlowError {
		return clierrors.ValidationError("report", "no report in progress")
	}

	if len(f.draft.Reasons) == 0 {
		return clierrors.ValidationError("reasons", "select at least one reason")
	}

	// Characters, not bytes; multibyte text gets the full allowance
	description := strings.TrimSpace(f.draft.Description)
	if utf8.RuneCountInString(description) > MaxReportDescription {
		return clierrors.ValidationError("description",
			"must be 500 characters or fewer")
	}

	f.state = FlowSubmitting
	err := f.backend.ReportCreate(f.target, f.targetID, f.draft.Reasons, description)

	switch {
	case err == nil:
		f.ledger.MarkReported(f.target, f.targetID)
		f.state = FlowSuccess
		f.draft = ReportDraft{}
		f.lastErr = nil
		return nil

	case errors.Is(err, ErrAlreadyReported):
		// The server confirming a duplicate is state reconciliation, not a
		// failure: mark the ledger, skip the success acknowledgment.
		logger.Debug("Report was a duplicate, reconciling ledger",
			"target", f.target, "target_id", f.targetID)
		f.ledger.MarkReported(f.target, f.targetID)
		f.state = FlowDuplicate
		f.draft = ReportDraft{}
		f.lastErr = nil
		return nil

	default:
		f.state = FlowError
		f.lastErr = err
		return err
	}
}

// Close discards the draft and closes the flow
func (f *ReportFlow) Close() {
	f.state = FlowClosed
	f.draft = ReportDraft{}
	f.lastErr = nil
}
