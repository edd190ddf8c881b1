package forum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(b *fakeBackend, identity IdentityFunc) *CommentTree {
	return NewCommentTree("p1", b, identity, NewReportLedger(b))
}

func seedTopLevel(b *fakeBackend, n int) {
	for i := 1; i <= n; i++ {
		b.comments["p1"] = append(b.comments["p1"], Comment{
			ID:             fmt.Sprintf("c%d", i),
			AuthorEmail:    "viewer@example.com",
			AuthorUsername: "viewer",
			Content:        fmt.Sprintf("comment %d", i),
		})
	}
	b.totals["p1"] = n
	b.nextID = n
}

func TestCommentTree_LoadKeepsOnlyTopLevel(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 2)
	parent := "c1"
	b.comments["p1"] = append(b.comments["p1"], Comment{ID: "r1", ParentID: &parent})
	b.totals["p1"] = 3

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	assert.Len(t, tree.All(), 2, "replies are fetched per node, not kept from the post load")
	assert.Equal(t, 3, tree.Total(), "total still counts replies")
}

func TestCommentTree_LoadReportsTotalToPost(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 4)
	b.totals["p1"] = 9 // server counted replies too

	var reported int
	tree := newTestTree(b, loggedIn)
	tree.OnCountChange = func(total int) { reported = total }

	require.NoError(t, tree.Load())
	assert.Equal(t, 9, reported)
}

func TestCommentTree_RevealToggles(t *testing.T) {
	// Seven comments render three by default; reveal shows all, a second
	// reveal collapses back.
	b := newFakeBackend()
	seedTopLevel(b, 7)

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	assert.Len(t, tree.Visible(), 3)

	tree.Reveal()
	assert.Len(t, tree.Visible(), 7)

	tree.Reveal()
	assert.Len(t, tree.Visible(), 3)
}

func TestCommentTree_VisibleWithFewComments(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 2)

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	assert.Len(t, tree.Visible(), 2)
}

func TestCommentTree_CreateTopLevelPrepends(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 2)

	var lastTotal int
	tree := newTestTree(b, loggedIn)
	tree.OnCountChange = func(total int) { lastTotal = total }
	require.NoError(t, tree.Load())

	tree.SetDraft("new thought")
	node, err := tree.CreateTopLevel(tree.Draft())
	require.NoError(t, err)

	assert.Equal(t, node.ID, tree.All()[0].ID, "newest-first without a re-fetch")
	assert.Equal(t, 3, lastTotal)
	assert.Empty(t, tree.Draft(), "draft clears on success")
}

func TestCommentTree_CreateTopLevelFailureKeepsDraft(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)
	b.failCreate = errBoom

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	tree.SetDraft("try again later")
	_, err := tree.CreateTopLevel(tree.Draft())
	require.Error(t, err)

	assert.Equal(t, "try again later", tree.Draft())
	assert.Len(t, tree.All(), 1, "nothing appended before confirmation")
	assert.Equal(t, 1, tree.Total())
}

func TestCommentTree_CreateTopLevelValidatesBeforeNetwork(t *testing.T) {
	b := newFakeBackend()
	tree := newTestTree(b, loggedIn)

	_, err := tree.CreateTopLevel("   ")
	assert.Error(t, err)
	assert.Equal(t, 0, tree.Total())
}

func TestCommentTree_CreateTopLevelLoginRequired(t *testing.T) {
	b := newFakeBackend()
	var prompted bool
	tree := newTestTree(b, loggedOut)
	tree.OnLoginRequired = func() { prompted = true }

	_, err := tree.CreateTopLevel("hello")
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.True(t, prompted)
}

func TestCommentTree_ReplyCountsTowardPostTotal(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)

	var lastTotal int
	tree := newTestTree(b, loggedIn)
	tree.OnCountChange = func(total int) { lastTotal = total }
	require.NoError(t, tree.Load())

	reply, err := tree.ReplyTo("c1", "agreed")
	require.NoError(t, err)

	assert.True(t, reply.IsReply())
	assert.Equal(t, "c1", *reply.ParentID)
	assert.Equal(t, 2, lastTotal)

	replies, loaded := tree.All()[0].Replies()
	assert.True(t, loaded)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)
}

func TestCommentTree_ReplyToReplyFlattens(t *testing.T) {
	// Replying to a reply attaches to the same parent; there is no third
	// nesting level.
	b := newFakeBackend()
	seedTopLevel(b, 1)

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	first, err := tree.ReplyTo("c1", "first reply")
	require.NoError(t, err)

	second, err := tree.ReplyTo(first.ID, "reply to the reply")
	require.NoError(t, err)

	assert.Equal(t, "c1", *second.ParentID)
	replies, _ := tree.All()[0].Replies()
	assert.Len(t, replies, 2)
}

func TestCommentTree_ReplyToUnfetchedReply(t *testing.T) {
	// The reply exists only server-side; a freshly loaded tree has not
	// fetched any reply lists yet. Replying to it must still land in the
	// parent's thread.
	b := newFakeBackend()
	seedTopLevel(b, 2)
	parent := "c1"
	r := Comment{ID: "r1", ParentID: &parent, AuthorEmail: "other@example.com", AuthorUsername: "other", Content: "earlier reply"}
	b.comments["p1"] = append(b.comments["p1"], r)
	b.replies["c1"] = append(b.replies["c1"], r)
	b.totals["p1"] = 3

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	node, err := tree.ReplyTo("r1", "joining the thread")
	require.NoError(t, err)
	assert.Equal(t, "c1", *node.ParentID)

	replies, loaded := tree.All()[0].Replies()
	require.True(t, loaded)
	assert.Len(t, replies, 2)
}

func TestCommentTree_DeleteUnfetchedReply(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)
	parent := "c1"
	r := Comment{ID: "r1", ParentID: &parent, AuthorEmail: "viewer@example.com", AuthorUsername: "viewer", Content: "mine"}
	b.comments["p1"] = append(b.comments["p1"], r)
	b.replies["c1"] = append(b.replies["c1"], r)
	b.totals["p1"] = 2

	var lastTotal int
	tree := newTestTree(b, loggedIn)
	tree.OnCountChange = func(total int) { lastTotal = total }
	require.NoError(t, tree.Load())

	require.NoError(t, tree.Delete("r1"))
	assert.Equal(t, 1, lastTotal)
	assert.Nil(t, tree.Find("r1"))
}

func TestCommentTree_ResolveFetchesUnloadedReplies(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)
	parent := "c1"
	r := Comment{ID: "r1", ParentID: &parent, Content: "hidden until fetched"}
	b.comments["p1"] = append(b.comments["p1"], r)
	b.replies["c1"] = append(b.replies["c1"], r)
	b.totals["p1"] = 2

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	assert.Nil(t, tree.Find("r1"), "Find only sees loaded nodes")

	node := tree.Resolve("r1")
	require.NotNil(t, node)
	assert.Equal(t, "c1", *node.ParentID)
	assert.NotNil(t, tree.Find("r1"), "the fetched reply list stays loaded")
}

func TestCommentTree_DeleteTopLevel(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 3)

	var lastTotal int
	tree := newTestTree(b, loggedIn)
	tree.OnCountChange = func(total int) { lastTotal = total }
	require.NoError(t, tree.Load())

	require.NoError(t, tree.Delete("c2"))

	assert.Len(t, tree.All(), 2)
	assert.Nil(t, tree.Find("c2"))
	assert.Equal(t, 2, lastTotal)
}

func TestCommentTree_DeleteReply(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	reply, err := tree.ReplyTo("c1", "short-lived")
	require.NoError(t, err)
	totalBefore := tree.Total()

	require.NoError(t, tree.Delete(reply.ID))

	replies, _ := tree.All()[0].Replies()
	assert.Empty(t, replies)
	assert.Equal(t, totalBefore-1, tree.Total())
}

func TestCommentTree_DeleteRequiresOwnership(t *testing.T) {
	b := newFakeBackend()
	b.comments["p1"] = []Comment{{ID: "c1", AuthorEmail: "someone-else@example.com"}}
	b.totals["p1"] = 1

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	err := tree.Delete("c1")
	assert.Error(t, err)
	assert.Len(t, tree.All(), 1)
}

func TestCommentTree_DeleteFailureKeepsNode(t *testing.T) {
	b := newFakeBackend()
	seedTopLevel(b, 1)
	b.failDelete = errBoom

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())

	err := tree.Delete("c1")
	require.Error(t, err)
	assert.Len(t, tree.All(), 1)
	assert.Equal(t, 1, tree.Total())
}

func TestCommentTree_CountConservation(t *testing.T) {
	// Creates and deletes at both levels compose additively
	b := newFakeBackend()
	seedTopLevel(b, 2)

	tree := newTestTree(b, loggedIn)
	require.NoError(t, tree.Load())
	require.Equal(t, 2, tree.Total())

	top, err := tree.CreateTopLevel("one more")
	require.NoError(t, err)
	require.Equal(t, 3, tree.Total())

	reply, err := tree.ReplyTo(top.ID, "and a reply")
	require.NoError(t, err)
	require.Equal(t, 4, tree.Total())

	require.NoError(t, tree.Delete(reply.ID))
	require.Equal(t, 3, tree.Total())

	require.NoError(t, tree.Delete(top.ID))
	require.Equal(t, 2, tree.Total())
}

func TestCommentTree_SharedLedgerVisibleToAllNodes(t *testing.T) {
	b := newFakeBackend()
	b.comments["p1"] = []Comment{
		{ID: "c1", AuthorEmail: "other@example.com"},
		{ID: "c2", AuthorEmail: "other@example.com"},
	}
	b.totals["p1"] = 2

	ledger := NewReportLedger(b)
	tree := NewCommentTree("p1", b, loggedIn, ledger)
	require.NoError(t, tree.Load())

	ledger.MarkReported(TargetComment, "c1")

	assert.True(t, tree.Find("c1").Reported())
	assert.False(t, tree.Find("c2").Reported())
}
