package forum

import (
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// ReactionStore tracks like/dislike counts and the viewer's own reaction for
// a single target. Counts only change after the server confirms a mutation,
// so a failed request never drifts the display.
type ReactionStore struct {
	backend  Backend
	identity IdentityFunc
	target   TargetType
	targetID string

	state  ReactionSummary
	loaded bool
	busy   bool
}

// NewReactionStore creates a reaction store for one target
func NewReactionStore(backend Backend, identity IdentityFunc, target TargetType, targetID string) *ReactionStore {
	return &ReactionStore{
		backend:  backend,
		identity: identity,
		target:   target,
		targetID: targetID,
	}
}

// State returns the current reaction state
func (s *ReactionStore) State() ReactionSummary {
	return s.state
}

// Loaded reports whether Load has succeeded at least once
func (s *ReactionStore) Loaded() bool {
	return s.loaded
}

// Load fetches the target's counts and the viewer's existing reaction.
// A fetch failure leaves the zero state in place so comment rendering is
// never blocked on reaction data.
func (s *ReactionStore) Load() ReactionSummary {
	summary, err := s.backend.ReactionSummary(s.target, s.targetID)
	if err != nil {
		logger.Debug("Reaction summary fetch failed, showing zero state",
			"target", s.target, "target_id", s.targetID, "error", err)
		return s.state
	}

	s.state = *summary
	s.loaded = true
	return s.state
}

// SetReaction applies a like/dislike click. Clicking the kind the viewer
// already holds removes it; anything else adds the new kind and, when the
// viewer held the opposite kind, drops that one locally in the same update.
// Either way the server sees exactly one call.
func (s *ReactionStore) SetReaction(kind ReactionKind) (ReactionSummary, error) {
	if s.identity() == nil {
		return s.state, ErrLoginRequired
	}
	if s.busy {
		return s.state, ErrRequestInFlight
	}

	s.busy = true
	defer func() { s.busy = false }()

	if s.state.UserReaction == kind {
		// Toggle-off
		if err := s.backend.RemoveReaction(s.target, s.targetID); err != nil {
			return s.state, err
		}
		s.state.UserReaction = ""
		s.decrement(kind)
		return s.state, nil
	}

	// New reaction, or switch from the opposite kind
	if err := s.backend.AddReaction(s.target, s.targetID, kind); err != nil {
		return s.state, err
	}

	if prev := s.state.UserReaction; prev != "" {
		s.decrement(prev)
	}
	s.increment(kind)
	s.state.UserReaction = kind
	return s.state, nil
}

func (s *ReactionStore) increment(kind ReactionKind) {
	if kind == ReactionLike {
		s.state.LikeCount++
	} else {
		s.state.DislikeCount++
	}
}

// decrement floors at zero; the tallies come from the server and may lag
// the viewer's own reaction row.
func (s *ReactionStore) decrement(kind ReactionKind) {
	if kind == ReactionLike {
		if s.state.LikeCount > 0 {
			s.state.LikeCount--
		}
	} else {
		if s.state.DislikeCount > 0 {
			s.state.DislikeCount--
		}
	}
}
