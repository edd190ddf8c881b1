// Package forum holds the client-side state for the travel forum: comment
// trees, reaction counts, and report bookkeeping. It talks to the server
// through the Backend interface and applies every mutation pessimistically,
// only after the server confirms it.
package forum

import "errors"

// TargetType identifies what a reaction or report is attached to
type TargetType string

const (
	TargetPost    TargetType = "POST"
	TargetComment TargetType = "COMMENT"
)

// ReactionKind is a viewer's reaction to a target. Like and dislike are
// mutually exclusive per viewer.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "LIKE"
	ReactionDislike ReactionKind = "DISLIKE"
)

// ReportReason is one of the fixed reasons a report may carry
type ReportReason string

const (
	ReasonSpam          ReportReason = "SPAM"
	ReasonInappropriate ReportReason = "INAPPROPRIATE"
	ReasonViolence      ReportReason = "VIOLENCE"
	ReasonHarassment    ReportReason = "HARASSMENT"
	ReasonHateSpeech    ReportReason = "HATE_SPEECH"
	ReasonFalseInfo     ReportReason = "FALSE_INFO"
	ReasonCopyright     ReportReason = "COPYRIGHT"
	ReasonOther         ReportReason = "OTHER"
)

// ReportReasons lists every selectable reason, in display order
func ReportReasons() []ReportReason {
	return []ReportReason{
		ReasonSpam,
		ReasonInappropriate,
		ReasonViolence,
		ReasonHarassment,
		ReasonHateSpeech,
		ReasonFalseInfo,
		ReasonCopyright,
		ReasonOther,
	}
}

// MaxReportDescription caps the optional free-text report description
const MaxReportDescription = 500

// Identity is the current viewer as known to the client
type Identity struct {
	Email     string
	Username  string
	AvatarURL string
}

// IdentityFunc returns the current viewer, or nil when nobody is logged in.
// Every mutating operation checks this before touching the network.
type IdentityFunc func() *Identity

var (
	// ErrLoginRequired is returned when an unauthenticated viewer attempts
	// a gated action. No network call is made.
	ErrLoginRequired = errors.New("login required")

	// ErrAlreadyReported is returned by Backend.ReportCreate when the server
	// says this viewer already reported the target. Callers treat it as a
	// confirmation, not a failure.
	ErrAlreadyReported = errors.New("already reported")

	// ErrRequestInFlight is returned when an operation is invoked while its
	// own previous request is still outstanding.
	ErrRequestInFlight = errors.New("request already in flight")
)

// Comment is the wire-level comment record as the core sees it
type Comment struct {
	ID             string
	ParentID       *string // nil for top-level comments
	AuthorEmail    string
	AuthorUsername string
	Content        string
	CreatedAt      string
}

// IsReply reports whether the comment is a reply to another comment
func (c Comment) IsReply() bool {
	return c.ParentID != nil
}
