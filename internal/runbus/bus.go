// Package runbus fans out run progress over Redis Pub/Sub so a separate
// process (internal/live's websocket server) can tail a run in progress
// without being wired directly into the interpreter.
package runbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is one published moment in a run's lifecycle.
type Event struct {
	RunID     string    `json:"run_id"`
	Type      string    `json:"type"` // "started", "line", "finished"
	Line      int       `json:"line,omitempty"`
	Text      string    `json:"text,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Bus publishes run events to Redis. A zero-value channel prefix falls back
// to "grin:run".
type Bus struct {
	rdb    *redis.Client
	prefix string
}

// New creates a Bus backed by a Redis client connected to addr.
func New(addr, channelPrefix string) *Bus {
	if channelPrefix == "" {
		channelPrefix = "grin:run"
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &Bus{rdb: rdb, prefix: channelPrefix}
}

// Close releases the underlying Redis client.
func (b *Bus) Close() error {
	return b.rdb.Close()
}

// Channel returns the Pub/Sub channel name a given run's events are
// published to.
func (b *Bus) Channel(runID string) string {
	return fmt.Sprintf("%s:%s", b.prefix, runID)
}

// Publish marshals and publishes ev to its run's channel.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal run event: %w", err)
	}
	return b.rdb.Publish(ctx, b.Channel(ev.RunID), string(data)).Err()
}

// Subscribe returns a channel of raw JSON payloads published for runID.
// Callers unmarshal into Event themselves; the subscription stays open until
// the returned function is called.
func (b *Bus) Subscribe(ctx context.Context, runID string) (<-chan *redis.Message, func()) {
	sub := b.rdb.Subscribe(ctx, b.Channel(runID))
	return sub.Channel(), func() { sub.Close() }
}
