package live

import (
	"context"
	"encoding/json"
	"log"

	"github.com/williamc15/Project3Final/internal/runbus"
)

// Tail subscribes to runID's runbus channel and forwards every event it
// receives to session. It blocks until ctx is cancelled or the subscription
// ends.
func Tail(ctx context.Context, bus *runbus.Bus, session *Session, runID string) {
	messages, cancel := bus.Subscribe(ctx, runID)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var ev runbus.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("live: malformed run event: %v", err)
				continue
			}
			session.Send(ev)
		}
	}
}
