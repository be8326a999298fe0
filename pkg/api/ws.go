package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var previewUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The editing API already gates cross-origin access; the preview socket
	// follows the same policy at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// HandlePreviewSocket streams edit events for one site to an open preview.
// The first frame is an init message; after that every committed edit
// arrives as its own JSON frame. Slow consumers miss events rather than
// blocking the editor; the preview re-fetches on reconnect.
func (s *Server) HandlePreviewSocket(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("site")

	conn, err := previewUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debugf("preview upgrade failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	id, events := s.hub.Register(siteID)
	defer s.hub.Unregister(id)

	init := map[string]any{
		"type":      "init",
		"site_id":   siteID,
		"listeners": s.hub.Size(),
		"at":        time.Now().UTC(),
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(init); err != nil {
		return
	}

	// Reader goroutine: we never expect client frames, but reading is what
	// surfaces close frames and connection drops.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
