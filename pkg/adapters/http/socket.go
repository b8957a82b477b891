package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/aretw0/domino/pkg/ports"
	"github.com/gorilla/websocket"
)

// Socket upgrades the request and drives a private tile for the connection.
//
// The client sends {"intent":"rotate_left"} (aliases such as "l" are
// accepted). Every applied intent is answered with one snapshot message;
// invalid input is answered with an error message and leaves the tile as is.
// Reads and writes happen on this goroutine only.
func (s *Server) Socket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id := fmt.Sprintf("C%d", s.nextID.Add(1))
	logger := s.logger.With("conn", id)
	logger.Debug("websocket connected", "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tile := s.newTile(socketRenderer(conn))
	if err := tile.Initialize(ctx); err != nil {
		logger.Warn("initialize tile", "error", err)
		closeWith(conn, websocket.CloseInternalServerErr, "initialize failed")
		return
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(idleWait))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket read", "error", err)
			}
			break
		}

		var msg domain.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := send(conn, domain.NewErrorMessage(fmt.Errorf("bad message: %w", err))); err != nil {
				break
			}
			continue
		}
		intent, err := domain.ParseIntent(string(msg.Intent))
		if err != nil {
			if err := send(conn, domain.NewErrorMessage(err)); err != nil {
				break
			}
			continue
		}
		if err := tile.Dispatch(ctx, intent); err != nil {
			logger.Debug("dispatch", "intent", intent, "error", err)
			break
		}
	}

	closeWith(conn, websocket.CloseNormalClosure, "bye")
	logger.Debug("websocket closed")
}

func socketRenderer(conn *websocket.Conn) ports.Renderer {
	return ports.RendererFunc(func(ctx context.Context, snap domain.Snapshot) error {
		return send(conn, domain.NewSnapshotMessage(snap))
	})
}

func send(conn *websocket.Conn, msg domain.Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func closeWith(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(time.Second))
}
