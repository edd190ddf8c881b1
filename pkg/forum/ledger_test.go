package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportLedger_MarkAndCheck(t *testing.T) {
	l := NewReportLedger(newFakeBackend())

	assert.False(t, l.IsReported(TargetComment, "c1"))

	l.MarkReported(TargetComment, "c1")
	assert.True(t, l.IsReported(TargetComment, "c1"))

	// Same id under a different target type is a different key
	assert.False(t, l.IsReported(TargetPost, "c1"))
}

func TestReportLedger_MarkIsIdempotent(t *testing.T) {
	l := NewReportLedger(newFakeBackend())

	l.MarkReported(TargetPost, "p1")
	l.MarkReported(TargetPost, "p1")
	assert.True(t, l.IsReported(TargetPost, "p1"))
}

func TestReportLedger_Monotone(t *testing.T) {
	// Once reported, nothing in the API can flip a target back
	b := newFakeBackend()
	l := NewReportLedger(b)

	l.MarkReported(TargetComment, "c1")
	l.CheckMany(TargetComment, []string{"c1", "c2"})
	l.MarkReported(TargetComment, "c1")

	assert.True(t, l.IsReported(TargetComment, "c1"))
}

func TestReportLedger_CheckManyPrimesFromServer(t *testing.T) {
	b := newFakeBackend()
	b.reported[targetKey(TargetComment, "c2")] = true

	l := NewReportLedger(b)
	l.CheckMany(TargetComment, []string{"c1", "c2", "c3"})

	assert.Equal(t, 3, b.checkCalls)
	assert.False(t, l.IsReported(TargetComment, "c1"))
	assert.True(t, l.IsReported(TargetComment, "c2"))
	assert.False(t, l.IsReported(TargetComment, "c3"))
}

func TestReportLedger_CheckManyToleratesFailures(t *testing.T) {
	b := newFakeBackend()
	b.failCheck = errBoom

	l := NewReportLedger(b)
	l.CheckMany(TargetComment, []string{"c1", "c2"})

	assert.False(t, l.IsReported(TargetComment, "c1"))
	assert.False(t, l.IsReported(TargetComment, "c2"))
}
