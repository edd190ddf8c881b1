package forum

import "strings"

// ModerationGate decides which mutations the current viewer may perform on a
// comment. Owners get edit and delete; everyone else gets report. The two
// sets are never offered together.
type ModerationGate struct {
	identity IdentityFunc
}

// NewModerationGate creates a gate bound to the viewer identity accessor
func NewModerationGate(identity IdentityFunc) *ModerationGate {
	return &ModerationGate{identity: identity}
}

// CanModify reports whether the viewer owns the comment (case-insensitive
// email match). Edit and delete are only reachable when this is true.
func (g *ModerationGate) CanModify(authorEmail string) bool {
	viewer := g.identity()
	if viewer == nil {
		return false
	}
	return strings.EqualFold(viewer.Email, authorEmail)
}

// CanReport reports whether the viewer may report the comment: any logged-in
// non-owner may.
func (g *ModerationGate) CanReport(authorEmail string) bool {
	viewer := g.identity()
	if viewer == nil {
		return false
	}
	return !g.CanModify(authorEmail)
}
