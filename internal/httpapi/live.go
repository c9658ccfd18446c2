package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"llmtools/internal/dashboard"
)

const liveWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		for _, o := range corsAllowedOrigins {
			if corsEnabled && (o == "*" || o == origin) {
				return true
			}
		}
		return false
	},
}

// handleLive godoc
// @Summary      Live dashboard
// @Description  Websocket that pushes a full dashboard snapshot immediately and then every refresh interval. With refresh=0 a single snapshot is sent and the socket is closed.
// @Tags         dashboard
// @Param        refresh  query  int  false  "Push interval (0, 30, 60, 120, 300)"
// @Success      101
// @Failure      400  {object}  types.ErrorResponse
// @Router       /api/dashboard/live [get]
func (s *server) handleLive(w http.ResponseWriter, r *http.Request) {
	def := int(liveInterval / time.Second)
	refresh, err := dashboard.ParseRefresh(r.URL.Query().Get("refresh"), def)
	if err != nil {
		writeErr(w, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		return
	}
	defer conn.Close()

	ctx, cancel := requestContext(r)
	defer cancel()

	// Reader pump: the client never sends data, but reading surfaces the
	// close frame so the push loop stops.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func() bool {
		snap := s.Dashboard.Snapshot(ctx)
		snap.RefreshSeconds = refresh
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(snap); err != nil {
			if zlog != nil {
				zlog.Debug().Err(err).Msg("live dashboard write")
			}
			return false
		}
		return true
	}

	if !push() {
		return
	}
	if refresh == 0 {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "auto-refresh disabled"),
			time.Now().Add(liveWriteWait))
		return
	}
	t := time.NewTicker(time.Duration(refresh) * time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(time.Second))
			return
		case <-t.C:
			if !push() {
				return
			}
		}
	}
}
