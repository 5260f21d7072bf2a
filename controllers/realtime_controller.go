package controllers

import (
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/logger"
	"github.com/jamiepatterson123/leenaai-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /ws — upgrade to a websocket that receives diary/target/alert events.
// The connection is read-only for the client; inbound frames are drained and
// ignored so pings and closes are processed.
func RealtimeSocket(c *gin.Context) {
	uid := c.GetUint("userID")

	hub := services.Hub()
	if hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "realtime updates are not available"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &services.WSClient{UserID: uid, Conn: conn}
	hub.Register(client)

	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
