package controllers

import (
	"context"
	"medtrack-portal/internal/app/services/core/dashboards"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// LiveController streams dashboard snapshots of the signed in role over a
// websocket, replacing the page's meta refresh.
type LiveController struct {
	*BaseController
	Feed *dashboards.Feed
	Hub  *dashboards.Hub
}

func NewLiveController(base *BaseController, feed *dashboards.Feed, hub *dashboards.Hub) *LiveController {
	return &LiveController{
		BaseController: base,
		Feed:           feed,
		Hub:            hub,
	}
}

func (ctrl *LiveController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(nil))
		return
	}

	fetch, errorMessage, err := ctrl.Feed.SnapshotFor(session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Error("LiveController.Dashboard error upgrading connection",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(exceptions.ErrWebsocketUpgrade(err)),
		)
		return
	}
	defer conn.Close()

	role := session.CurrentUser().Role
	client := dashboards.NewClient(session.ID, role)
	ctrl.Hub.Register(client)
	defer ctrl.Hub.Unregister(client)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	poller := dashboards.NewPoller(role, ctrl.InternalConfig.Dashboard.RefreshInterval(string(role)), fetch, errorMessage, ctrl.Log)
	go poller.Run(ctx, client.Push)
	go ctrl.readPump(conn, client)

	ctrl.writePump(conn, client)
}

// readPump discards client messages and closes the client once the
// connection goes away.
func (ctrl *LiveController) readPump(conn *websocket.Conn, client *dashboards.Client) {
	defer client.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (ctrl *LiveController) writePump(conn *websocket.Conn, client *dashboards.Client) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-client.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(liveWriteWait))
			return
		}
	}
}

func (ctrl *LiveController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckOKMessage, map[string]int{
		"liveConnections": ctrl.Hub.Clients(),
	})
}
