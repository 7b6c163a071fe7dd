package live

import (
	"net/http"

	"campusconnect/backend/internal/hub"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"go.uber.org/zap"
)

const namespace = "/"

// Server mounts Handlers on a Socket.IO server.
type Server struct {
	io       *socketio.Server
	handlers *Handlers
	log      *zap.Logger
}

// NewServer registers every event. checkOrigin is applied to both transports.
func NewServer(handlers *Handlers, log *zap.Logger, checkOrigin func(r *http.Request) bool) *Server {
	io := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{CheckOrigin: checkOrigin},
			&polling.Transport{CheckOrigin: checkOrigin},
		},
	})
	s := &Server{io: io, handlers: handlers, log: log}

	io.OnConnect(namespace, func(conn socketio.Conn) error {
		u := conn.URL()
		client, err := handlers.Connect(conn, u.Query().Get("token"))
		if err != nil {
			log.Error("failed to register live client", zap.Error(err))
			return err
		}
		conn.SetContext(client)
		log.Debug("socket connected", zap.String("socket", conn.ID()), zap.String("client", client.ID()))
		return nil
	})

	io.OnEvent(namespace, EventJoinNotifications, func(conn socketio.Conn, userID string) {
		if client := clientOf(conn); client != nil {
			handlers.Join(client, conn, EventJoinNotifications, userID)
		}
	})

	io.OnEvent(namespace, EventJoinChat, func(conn socketio.Conn, userID string) {
		if client := clientOf(conn); client != nil {
			handlers.Join(client, conn, EventJoinChat, userID)
		}
	})

	io.OnEvent(namespace, EventSendMessage, func(conn socketio.Conn, p SendMessagePayload) {
		handlers.SendMessage(conn, p)
	})

	io.OnEvent(namespace, EventSendFriendRequest, func(conn socketio.Conn, p FriendRequestPayload) {
		handlers.SendFriendRequest(conn, p)
	})

	io.OnError(namespace, func(conn socketio.Conn, err error) {
		log.Warn("socket error", zap.Error(err))
	})

	io.OnDisconnect(namespace, func(conn socketio.Conn, reason string) {
		handlers.Disconnect(clientOf(conn))
		log.Debug("socket disconnected", zap.String("socket", conn.ID()), zap.String("reason", reason))
	})

	return s
}

func clientOf(conn socketio.Conn) *hub.Client {
	if conn == nil {
		return nil
	}
	client, _ := conn.Context().(*hub.Client)
	return client
}

// Serve runs the Socket.IO event loop until Close.
func (s *Server) Serve() {
	if err := s.io.Serve(); err != nil {
		s.log.Error("socket.io server stopped", zap.Error(err))
	}
}

func (s *Server) Close() error {
	return s.io.Close()
}

// Handler exposes the server on a gin route.
func (s *Server) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.io.ServeHTTP(c.Writer, c.Request)
	}
}
