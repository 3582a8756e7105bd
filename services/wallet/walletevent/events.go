package walletevent

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// EventType type for event types.
type EventType string

// Event is a type for gallery events delivered through an event.Feed.
type Event struct {
	Type     EventType        `json:"type"`
	Accounts []common.Address `json:"accounts"`
	Message  string           `json:"message"`
	At       int64            `json:"at"`
	ChainID  uint64           `json:"chainId"`
	// EventParams carries the typed payload; it is not serialized.
	EventParams interface{} `json:"-"`
}

// Send stamps the event time and publishes it on feed. A nil feed is allowed.
func Send(feed *event.Feed, e Event) {
	if feed == nil {
		return
	}
	if e.At == 0 {
		e.At = time.Now().Unix()
	}
	feed.Send(e)
}
