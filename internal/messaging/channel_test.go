package messaging

import (
	"context"
	"testing"
	"time"

	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/testutil"
	"campusconnect/backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChannel(t *testing.T) (*Channel, *testutil.Notifier) {
	t.Helper()
	notifier := &testutil.Notifier{}
	return NewChannel(testutil.NewDB(t), notifier), notifier
}

func TestSendThenConversationRoundTrip(t *testing.T) {
	ch, notifier := newChannel(t)
	alice, bob := uuid.NewString(), uuid.NewString()
	ctx := context.Background()
	before := time.Now().UTC().Truncate(time.Millisecond)

	sent, err := ch.Send(ctx, alice, bob, "Salut Bob")
	require.NoError(t, err)
	assert.NotEmpty(t, sent.ID)

	conv, err := ch.Conversation(ctx, bob, alice)
	require.NoError(t, err)
	require.Len(t, conv, 1)
	assert.Equal(t, "Salut Bob", conv[0].Content)
	assert.Equal(t, alice, conv[0].SenderID)

	ts, err := time.Parse(time.RFC3339Nano, conv[0].Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))

	var stored models.Message
	require.NoError(t, ch.db.First(&stored, "id = ?", sent.ID).Error)
	assert.True(t, stored.CreatedAt.Equal(ts), "rendered timestamp is the stored one, not a rounded copy")

	events := notifier.Named(EventMessageReceived)
	require.Len(t, events, 1)
	assert.ElementsMatch(t, []string{alice, bob}, events[0].Targets)
	assert.Equal(t, sent, events[0].Payload)
}

func TestSend_InvalidInput(t *testing.T) {
	ch, notifier := newChannel(t)
	alice, bob := uuid.NewString(), uuid.NewString()

	tests := []struct {
		name                string
		sender, receiver, c string
	}{
		{"missing sender", "", bob, "hi"},
		{"malformed receiver", alice, "bob", "hi"},
		{"blank content", alice, bob, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ch.Send(context.Background(), tt.sender, tt.receiver, tt.c)
			assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
		})
	}
	assert.Empty(t, notifier.Events)
}

func TestConversation_OrderedAndScopedToPair(t *testing.T) {
	ch, _ := newChannel(t)
	alice, bob, carol := uuid.NewString(), uuid.NewString(), uuid.NewString()
	ctx := context.Background()

	for _, m := range []struct{ from, to, content string }{
		{alice, bob, "one"},
		{bob, alice, "two"},
		{alice, carol, "elsewhere"},
		{alice, bob, "three"},
	} {
		_, err := ch.Send(ctx, m.from, m.to, m.content)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	conv, err := ch.Conversation(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "one", conv[0].Content)
	assert.Equal(t, "two", conv[1].Content)
	assert.Equal(t, "three", conv[2].Content)

	empty, err := ch.Conversation(ctx, bob, carol)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEdit_PublishesToStoredParticipants(t *testing.T) {
	ch, notifier := newChannel(t)
	alice, bob := uuid.NewString(), uuid.NewString()
	ctx := context.Background()

	sent, err := ch.Send(ctx, alice, bob, "helo")
	require.NoError(t, err)

	edited, err := ch.Edit(ctx, sent.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", edited.Content)
	assert.Equal(t, sent.ID, edited.ID)

	events := notifier.Named(EventMessageEdited)
	require.Len(t, events, 1)
	assert.ElementsMatch(t, []string{alice, bob}, events[0].Targets)

	conv, err := ch.Conversation(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, conv, 1)
	assert.Equal(t, "hello", conv[0].Content)
}

func TestEdit_Errors(t *testing.T) {
	ch, notifier := newChannel(t)
	alice, bob := uuid.NewString(), uuid.NewString()
	ctx := context.Background()

	sent, err := ch.Send(ctx, alice, bob, "same")
	require.NoError(t, err)

	_, err = ch.Edit(ctx, sent.ID, "")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = ch.Edit(ctx, uuid.NewString(), "new")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = ch.Edit(ctx, sent.ID, "same")
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "unchanged content is not a modification")

	assert.Empty(t, notifier.Named(EventMessageEdited))
}

func TestNewPayloadFormatsUTCMillis(t *testing.T) {
	created := time.Date(2024, 3, 1, 11, 15, 30, 123456789, time.FixedZone("CET", 3600))
	p := NewPayload(models.Message{ID: "m", SenderID: "a", ReceiverID: "b", Content: "x", CreatedAt: created})

	assert.Equal(t, "2024-03-01T10:15:30.123Z", p.Timestamp)
}
