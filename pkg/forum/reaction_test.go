package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(b *fakeBackend) *ReactionStore {
	return NewReactionStore(b, loggedIn, TargetComment, "c1")
}

func TestReactionStore_LoadSeedsState(t *testing.T) {
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{
		LikeCount: 5, DislikeCount: 2, UserReaction: ReactionLike,
	}

	s := newTestStore(b)
	state := s.Load()

	assert.Equal(t, 5, state.LikeCount)
	assert.Equal(t, 2, state.DislikeCount)
	assert.Equal(t, ReactionLike, state.UserReaction)
	assert.True(t, s.Loaded())
}

func TestReactionStore_LoadFailureDegradesToZeroState(t *testing.T) {
	b := newFakeBackend()
	b.failSummary = errBoom

	s := newTestStore(b)
	state := s.Load()

	assert.Equal(t, ReactionSummary{}, state)
	assert.False(t, s.Loaded())
}

func TestReactionStore_FirstLike(t *testing.T) {
	// Viewer with no prior reaction clicks LIKE on {5, 2, none}
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{LikeCount: 5, DislikeCount: 2}

	s := newTestStore(b)
	s.Load()

	state, err := s.SetReaction(ReactionLike)
	require.NoError(t, err)

	assert.Equal(t, 6, state.LikeCount)
	assert.Equal(t, 2, state.DislikeCount)
	assert.Equal(t, ReactionLike, state.UserReaction)
	assert.Equal(t, 1, b.addCalls)
	assert.Equal(t, 0, b.removeCalls)
}

func TestReactionStore_SwitchToDislike(t *testing.T) {
	// From {6, 2, LIKE} the viewer clicks DISLIKE: the switch is one round
	// trip and drops the old like locally.
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{LikeCount: 5, DislikeCount: 2}

	s := newTestStore(b)
	s.Load()

	_, err := s.SetReaction(ReactionLike)
	require.NoError(t, err)

	state, err := s.SetReaction(ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, 5, state.LikeCount)
	assert.Equal(t, 3, state.DislikeCount)
	assert.Equal(t, ReactionDislike, state.UserReaction)
	assert.Equal(t, 2, b.addCalls, "switch should issue a single add, not remove+add")
	assert.Equal(t, 0, b.removeCalls)
}

func TestReactionStore_ToggleOffReturnsToOriginal(t *testing.T) {
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{LikeCount: 5, DislikeCount: 2}

	s := newTestStore(b)
	s.Load()

	_, err := s.SetReaction(ReactionLike)
	require.NoError(t, err)

	state, err := s.SetReaction(ReactionLike)
	require.NoError(t, err)

	assert.Equal(t, 5, state.LikeCount)
	assert.Equal(t, ReactionKind(""), state.UserReaction)
	assert.Equal(t, 1, b.removeCalls)
}

func TestReactionStore_MutualExclusivity(t *testing.T) {
	// After any sequence of clicks the viewer holds at most one reaction
	b := newFakeBackend()
	s := newTestStore(b)
	s.Load()

	clicks := []ReactionKind{
		ReactionLike, ReactionDislike, ReactionDislike,
		ReactionDislike, ReactionLike, ReactionLike,
	}
	for _, kind := range clicks {
		state, err := s.SetReaction(kind)
		require.NoError(t, err)
		assert.Contains(t, []ReactionKind{"", ReactionLike, ReactionDislike}, state.UserReaction)
	}

	// Ended on toggle-off of LIKE
	assert.Equal(t, ReactionKind(""), s.State().UserReaction)
	assert.Equal(t, 0, s.State().LikeCount)
	assert.Equal(t, 0, s.State().DislikeCount)
}

func TestReactionStore_CountsFloorAtZero(t *testing.T) {
	// Server tallies can lag the viewer's own reaction row; a removal must
	// never push a count negative.
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{UserReaction: ReactionLike}

	s := newTestStore(b)
	s.Load()

	state, err := s.SetReaction(ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, 0, state.LikeCount)
}

func TestReactionStore_FailedRequestLeavesStateUnchanged(t *testing.T) {
	b := newFakeBackend()
	b.summaries[targetKey(TargetComment, "c1")] = &ReactionSummary{LikeCount: 5, DislikeCount: 2}
	b.failAdd = errBoom

	s := newTestStore(b)
	s.Load()
	before := s.State()

	_, err := s.SetReaction(ReactionLike)
	require.Error(t, err)
	assert.Equal(t, before, s.State())
}

func TestReactionStore_LoginRequired(t *testing.T) {
	b := newFakeBackend()
	s := NewReactionStore(b, loggedOut, TargetComment, "c1")

	_, err := s.SetReaction(ReactionLike)
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, 0, b.addCalls, "no network call for unauthenticated viewer")
}
