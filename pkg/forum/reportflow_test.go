package forum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
)

func newTestFlow(b *fakeBackend, identity IdentityFunc) *ReportFlow {
	return NewReportFlow(b, identity, NewReportLedger(b), TargetComment, "c1")
}

func TestReportFlow_SuccessMarksLedger(t *testing.T) {
	b := newFakeBackend()
	f := newTestFlow(b, loggedIn)

	require.NoError(t, f.Open())
	assert.Equal(t, FlowReasonSelection, f.State())

	f.ToggleReason(ReasonSpam)
	f.SetDescription("promotional links everywhere")
	require.NoError(t, f.Submit())

	assert.Equal(t, FlowSuccess, f.State())
	assert.True(t, f.AlreadyReported())
	assert.Empty(t, f.Draft().Reasons, "draft discarded after submit")
}

func TestReportFlow_ZeroReasonsNeverReachNetwork(t *testing.T) {
	b := newFakeBackend()
	f := newTestFlow(b, loggedIn)

	require.NoError(t, f.Open())
	err := f.Submit()

	require.Error(t, err)
	assert.Equal(t, clierrors.ErrorTypeValidation, clierrors.CategorizeError(err).Type)
	assert.Equal(t, 0, b.reportCalls)
	assert.Equal(t, FlowReasonSelection, f.State())
}

func TestReportFlow_DescriptionOverCapRejectedLocally(t *testing.T) {
	b := newFakeBackend()
	f := newTestFlow(b, loggedIn)

	require.NoError(t, f.Open())
	f.ToggleReason(ReasonOther)

	long := make([]byte, MaxReportDescription+1)
	for i := range long {
		long[i] = 'x'
	}
	f.SetDescription(string(long))

	err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, 0, b.reportCalls)
}

func TestReportFlow_DescriptionCapCountsCharactersNotBytes(t *testing.T) {
	b := newFakeBackend()
	f := newTestFlow(b, loggedIn)

	require.NoError(t, f.Open())
	f.ToggleReason(ReasonOther)

	// 200 characters but 600 bytes; well within the cap
	f.SetDescription(strings.Repeat("한", 200))
	require.NoError(t, f.Submit())
	assert.Equal(t, 1, b.reportCalls)
	assert.Equal(t, FlowSuccess, f.State())

	// One character over the cap is still rejected locally
	f2 := newTestFlow(newFakeBackend(), loggedIn)
	require.NoError(t, f2.Open())
	f2.ToggleReason(ReasonOther)
	f2.SetDescription(strings.Repeat("한", MaxReportDescription+1))
	require.Error(t, f2.Submit())
}

func TestReportFlow_DuplicateIsBenign(t *testing.T) {
	// Server says "already reported": ledger updated, no error, no success
	// acknowledgment state either.
	b := newFakeBackend()
	b.reported[targetKey(TargetComment, "c1")] = true

	f := newTestFlow(b, loggedIn)
	require.NoError(t, f.Open())
	f.ToggleReason(ReasonHarassment)

	err := f.Submit()
	require.NoError(t, err)

	assert.Equal(t, FlowDuplicate, f.State())
	assert.True(t, f.AlreadyReported())
	assert.NoError(t, f.Err())
}

func TestReportFlow_ErrorPreservesDraftForRetry(t *testing.T) {
	b := newFakeBackend()
	b.failReport = errBoom

	f := newTestFlow(b, loggedIn)
	require.NoError(t, f.Open())
	f.ToggleReason(ReasonViolence)
	f.ToggleReason(ReasonHateSpeech)
	f.SetDescription("graphic content")

	err := f.Submit()
	require.Error(t, err)

	assert.Equal(t, FlowError, f.State())
	assert.False(t, f.AlreadyReported(), "ledger untouched on real failure")
	assert.Equal(t, []ReportReason{ReasonViolence, ReasonHateSpeech}, f.Draft().Reasons)
	assert.Equal(t, "graphic content", f.Draft().Description)

	// Retry without re-selecting anything
	b.failReport = nil
	require.NoError(t, f.Submit())
	assert.Equal(t, FlowSuccess, f.State())
	assert.True(t, f.AlreadyReported())
}

func TestReportFlow_ToggleReasonRemovesOnSecondToggle(t *testing.T) {
	f := newTestFlow(newFakeBackend(), loggedIn)
	require.NoError(t, f.Open())

	f.ToggleReason(ReasonSpam)
	f.ToggleReason(ReasonOther)
	f.ToggleReason(ReasonSpam)

	assert.Equal(t, []ReportReason{ReasonOther}, f.Draft().Reasons)
}

func TestReportFlow_OpenRequiresLogin(t *testing.T) {
	f := newTestFlow(newFakeBackend(), loggedOut)

	err := f.Open()
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, FlowClosed, f.State())
}

func TestReportFlow_CloseDiscardsDraft(t *testing.T) {
	f := newTestFlow(newFakeBackend(), loggedIn)
	require.NoError(t, f.Open())
	f.ToggleReason(ReasonSpam)

	f.Close()

	assert.Equal(t, FlowClosed, f.State())
	assert.Empty(t, f.Draft().Reasons)
}
