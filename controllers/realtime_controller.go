package controllers

import (
	"net/http"
	"time"

	"github.com/Varun6712/smart-calories/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const pingInterval = 25 * time.Second

type RealtimeController struct {
	RT     *services.RealtimeHub
	Logger *zap.Logger
}

func NewRealtimeController(rt *services.RealtimeHub, logger *zap.Logger) *RealtimeController {
	return &RealtimeController{RT: rt, Logger: logger}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/logs streams log.created events.
func (rc *RealtimeController) LogsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.Logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := services.NewWSClient(conn)
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Write(websocket.PingMessage, nil); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
