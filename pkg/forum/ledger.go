package forum

import (
	"sync"

	"github.com/wanderly/wanderly-cli/pkg/logger"
)

type ledgerKey struct {
	target   TargetType
	targetID string
}

// ReportLedger records which targets the current viewer has already reported,
// so the client never submits a duplicate and can label targets as reported.
// One ledger is shared by every comment node rendered for a post; once a
// target is marked it stays marked for the session.
type ReportLedger struct {
	backend Backend

	mu       sync.Mutex
	reported map[ledgerKey]bool
}

// NewReportLedger creates an empty ledger
func NewReportLedger(backend Backend) *ReportLedger {
	return &ReportLedger{
		backend:  backend,
		reported: make(map[ledgerKey]bool),
	}
}

// CheckMany primes the ledger by asking the server about each target.
// Lookups that fail are skipped; the ledger is a best-effort cache and a
// miss only means the server gets asked again at submission time.
func (l *ReportLedger) CheckMany(target TargetType, targetIDs []string) {
	for _, id := range targetIDs {
		reported, err := l.backend.ReportCheck(target, id)
		if err != nil {
			logger.Debug("Report check failed", "target", target, "target_id", id, "error", err)
			continue
		}
		if reported {
			l.MarkReported(target, id)
		}
	}
}

// MarkReported records a confirmed report. Idempotent.
func (l *ReportLedger) MarkReported(target TargetType, targetID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reported[ledgerKey{target, targetID}] = true
}

// IsReported reports whether the viewer already reported the target
func (l *ReportLedger) IsReported(target TargetType, targetID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reported[ledgerKey{target, targetID}]
}
