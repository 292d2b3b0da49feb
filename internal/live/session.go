// Package live streams a single Grin run's progress to one connected
// browser client over a WebSocket, fed by events tailed from internal/runbus.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// Session wraps one WebSocket connection watching one run. cmd/grin-server
// accepts a fresh Session per "/runs/{id}/live" request, so unlike a
// dashboard hub serving many simultaneous viewers, there is never more than
// one client to track and no client registry to maintain.
type Session struct {
	conn *websocket.Conn
	send chan []byte
}

// Accept upgrades the request to a WebSocket and returns the Session that
// wraps it.
func Accept(w http.ResponseWriter, r *http.Request) (*Session, error) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // LAN dashboard use
	})
	if err != nil {
		return nil, err
	}
	return &Session{conn: conn, send: make(chan []byte, 64)}, nil
}

// Send marshals v and queues it for delivery. Safe to call from any
// goroutine. If the client is too far behind to keep up, the event is
// dropped rather than blocking the sender.
func (s *Session) Send(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("live: failed to marshal event: %v", err)
		return
	}
	select {
	case s.send <- data:
	default:
		// client buffer full, drop
	}
}

// Serve writes queued events to the client and drains whatever the client
// sends back (Grin's live view is output-only) until ctx is cancelled or the
// client disconnects. Serve blocks until the connection ends.
func (s *Session) Serve(ctx context.Context) {
	go s.writeLoop(ctx)
	s.readLoop(ctx)
}

func (s *Session) writeLoop(ctx context.Context) {
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	for {
		select {
		case msg, ok := <-s.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := s.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) readLoop(ctx context.Context) {
	for {
		if _, _, err := s.conn.Read(ctx); err != nil {
			return
		}
		// clients never send us anything meaningful; just drain
	}
}
