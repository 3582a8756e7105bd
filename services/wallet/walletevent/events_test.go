package walletevent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

func TestSendStampsTime(t *testing.T) {
	feed := &event.Feed{}
	ch := make(chan Event, 1)
	sub := feed.Subscribe(ch)
	defer sub.Unsubscribe()

	account := common.HexToAddress("0x1")
	Send(feed, Event{Type: "gallery-scan-started", Accounts: []common.Address{account}})

	select {
	case e := <-ch:
		require.Equal(t, EventType("gallery-scan-started"), e.Type)
		require.Equal(t, []common.Address{account}, e.Accounts)
		require.NotZero(t, e.At)
	case <-time.After(time.Second):
		require.Fail(t, "event not delivered")
	}
}

func TestSendNilFeed(t *testing.T) {
	require.NotPanics(t, func() {
		Send(nil, Event{Type: "gallery-scan-started"})
	})
}
