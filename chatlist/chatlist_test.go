package chatlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astroai/models"
)

func sample() List {
	return List{
		{ID: 1, Title: "Career reading", Messages: []models.Message{
			{ID: 10, ChatID: 1, Content: "Will I get the job?", IsUser: true},
			{ID: 11, ChatID: 1, Content: "Jupiter favors you.", IsUser: false},
		}},
		{ID: 2, Title: "Love life"},
		{ID: 3, Title: "New Chat"},
	}
}

func TestPrepend(t *testing.T) {
	l := Prepend(sample(), models.Chat{ID: 4, Title: "New Chat"})
	require.Len(t, l, 4)
	assert.Equal(t, int64(4), l[0].ID)
	assert.Equal(t, int64(1), l[1].ID)
}

func TestRemove(t *testing.T) {
	l := Remove(sample(), 2)
	require.Len(t, l, 2)
	assert.Equal(t, int64(1), l[0].ID)
	assert.Equal(t, int64(3), l[1].ID)

	assert.Len(t, Remove(sample(), 99), 3)
}

func TestReplace_KeepsPositionAndMessages(t *testing.T) {
	orig := sample()
	updated := orig[0]
	updated.Title = "Career questions"

	l := Replace(orig, updated)
	require.Len(t, l, 3)
	assert.Equal(t, "Career questions", l[0].Title)
	assert.Equal(t, int64(1), l[0].ID)
	assert.Len(t, l[0].Messages, 2, "rename must not touch message history")
	assert.Equal(t, "Love life", l[1].Title)
}

func TestAppendMessages_PreservesOrder(t *testing.T) {
	newMsgs := []models.Message{
		{ID: 12, ChatID: 1, Content: "And the salary?", IsUser: true},
		{ID: 13, ChatID: 1, Content: "Saturn suggests patience.", IsUser: false},
	}

	l := AppendMessages(sample(), 1, newMsgs)
	got := l[0].Messages
	require.Len(t, got, 4)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, int64(11), got[1].ID)
	assert.Equal(t, int64(12), got[2].ID)
	assert.Equal(t, int64(13), got[3].ID)

	// Other chats untouched.
	assert.Empty(t, l[1].Messages)
}

func TestAppendMessages_DoesNotMutateInput(t *testing.T) {
	orig := sample()
	_ = AppendMessages(orig, 1, []models.Message{{ID: 12}})
	assert.Len(t, orig[0].Messages, 2)
}

func TestResolve(t *testing.T) {
	l := sample()

	id, ok := Resolve(l, 2)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	// Unknown id falls back to the first chat.
	id, ok = Resolve(l, 42)
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	// No requested id: first chat.
	id, ok = Resolve(l, 0)
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	_, ok = Resolve(List{}, 0)
	assert.False(t, ok)
}

func TestNextActive_DeletingActiveChatFallsBackToRemaining(t *testing.T) {
	l := List{{ID: 1}, {ID: 2}}

	after := Remove(l, 1)
	id, ok := NextActive(after, 1, 1)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func TestNextActive_DeletingLastChatYieldsNone(t *testing.T) {
	l := List{{ID: 1}}

	after := Remove(l, 1)
	_, ok := NextActive(after, 1, 1)
	assert.False(t, ok)
}

func TestNextActive_DeletingInactiveChatKeepsActive(t *testing.T) {
	l := sample()

	after := Remove(l, 3)
	id, ok := NextActive(after, 3, 2)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
}
