package live

import (
	"sync"
	"testing"
	"time"

	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/messaging"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/relationship"
	"campusconnect/backend/internal/testutil"
	"campusconnect/backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const secret = "live-secret"

type emitted struct {
	event string
	args  []interface{}
}

// recorder is a fake socket that keeps every emitted event.
type recorder struct {
	mu     sync.Mutex
	events []emitted
}

func (r *recorder) Emit(event string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, emitted{event: event, args: v})
}

func (r *recorder) named(event string) []emitted {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []emitted
	for _, e := range r.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) waitFor(t *testing.T, event string, n int) []emitted {
	t.Helper()
	require.Eventually(t, func() bool { return len(r.named(event)) >= n }, time.Second, 5*time.Millisecond)
	return r.named(event)
}

func setup(t *testing.T) (*Handlers, *hub.Hub, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	h := hub.NewHub()
	handlers := NewHandlers(h,
		messaging.NewChannel(db, h),
		relationship.NewEngine(db, h),
		zap.NewNop(),
		Options{JWTSecret: secret, BufferSize: 8, EventTimeout: time.Second},
	)
	return handlers, h, db
}

func connect(t *testing.T, handlers *Handlers, token string) (*hub.Client, *recorder) {
	t.Helper()
	out := &recorder{}
	client, err := handlers.Connect(out, token)
	require.NoError(t, err)
	t.Cleanup(func() { handlers.Disconnect(client) })
	return client, out
}

func TestSendMessageReachesBothParticipants(t *testing.T) {
	handlers, _, _ := setup(t)
	alice, bob := uuid.NewString(), uuid.NewString()

	aliceClient, aliceOut := connect(t, handlers, "")
	bobClient, bobOut := connect(t, handlers, "")
	handlers.Join(aliceClient, aliceOut, EventJoinChat, alice)
	handlers.Join(bobClient, bobOut, EventJoinNotifications, bob)

	handlers.SendMessage(aliceOut, SendMessagePayload{SenderID: alice, ReceiverID: bob, Content: "coucou"})

	got := bobOut.waitFor(t, messaging.EventMessageReceived, 1)
	payload := got[0].args[0].(messaging.Payload)
	assert.Equal(t, "coucou", payload.Content)
	assert.Equal(t, alice, payload.SenderID)

	aliceOut.waitFor(t, messaging.EventMessageReceived, 1)
}

func TestTokenJoinsSubjectRoom(t *testing.T) {
	handlers, h, _ := setup(t)
	alice := uuid.NewString()
	token, err := jwt.GenerateToken(alice, secret)
	require.NoError(t, err)

	connect(t, handlers, token)
	assert.True(t, h.Online(alice))

	connect(t, handlers, "garbage")
	assert.False(t, h.Online("garbage"))
}

func TestSendFriendRequestNotifiesResponderOnce(t *testing.T) {
	handlers, _, db := setup(t)
	alice, bob := uuid.NewString(), uuid.NewString()

	bobClient, bobOut := connect(t, handlers, "")
	handlers.Join(bobClient, bobOut, EventJoinNotifications, bob)
	_, aliceOut := connect(t, handlers, "")

	handlers.SendFriendRequest(aliceOut, FriendRequestPayload{SenderID: alice, ReceiverID: bob})
	bobOut.waitFor(t, relationship.EventFriendRequestReceived, 1)

	// The duplicate, in the other direction, is dropped without an error.
	handlers.SendFriendRequest(aliceOut, FriendRequestPayload{SenderID: bob, ReceiverID: alice})
	time.Sleep(20 * time.Millisecond)

	assert.Len(t, bobOut.named(relationship.EventFriendRequestReceived), 1)
	assert.Empty(t, aliceOut.named(EventError))

	var count int64
	db.Model(&models.Relationship{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestInvalidPayloadsEmitErrorToSenderOnly(t *testing.T) {
	handlers, _, _ := setup(t)
	client, out := connect(t, handlers, "")

	handlers.SendMessage(out, SendMessagePayload{SenderID: uuid.NewString(), ReceiverID: "bob"})
	handlers.SendFriendRequest(out, FriendRequestPayload{SenderID: uuid.NewString()})
	handlers.Join(client, out, EventJoinChat, "")

	errs := out.named(EventError)
	require.Len(t, errs, 3)
	assert.Equal(t, EventSendMessage, errs[0].args[0].(ErrorPayload).Event)
	assert.Equal(t, EventSendFriendRequest, errs[1].args[0].(ErrorPayload).Event)
	assert.Equal(t, EventJoinChat, errs[2].args[0].(ErrorPayload).Event)
}

func TestDisconnectLeavesRooms(t *testing.T) {
	handlers, h, _ := setup(t)
	alice := uuid.NewString()

	out := &recorder{}
	client, err := handlers.Connect(out, "")
	require.NoError(t, err)
	handlers.Join(client, out, EventJoinChat, alice)
	require.True(t, h.Online(alice))

	handlers.Disconnect(client)
	assert.False(t, h.Online(alice))
	handlers.Disconnect(client)
}
