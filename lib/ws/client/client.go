package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// PongWait is how long a silent socket stays open, the hub pings more often than that.
const PongWait = 60 * time.Second

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// WsClient reads the client side of the socket. Pushes only go out, incoming
// frames are logged and the read loop ends on disconnect or a missed pong.
type WsClient struct {
	conn   *websocket.Conn
	userID string
}

func isExpectedClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}

func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	if err := c.conn.SetReadDeadline(time.Now().Add(PongWait)); err != nil {
		logger.WithError(err).Warn("ws read deadline not set")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(PongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !isExpectedClose(err) {
				logger.WithError(err).Info("ws connection dropped")
			}
			return
		}
		logger.WithField("ws_message", string(data)).Debug("ws message received")
	}
}
