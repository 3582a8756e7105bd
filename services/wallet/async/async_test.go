package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGroup_StopCancelsCommands(t *testing.T) {
	group := NewGroup(context.Background())

	var finished atomic.Int32
	for i := 0; i < 3; i++ {
		group.Add(func(ctx context.Context) error {
			<-ctx.Done()
			finished.Add(1)
			return ctx.Err()
		})
	}

	group.Stop()
	select {
	case <-group.WaitAsync():
	case <-time.After(time.Second):
		t.Fatal("group did not stop")
	}
	require.Equal(t, int32(3), finished.Load())
}

func TestGroup_WaitForCompletion(t *testing.T) {
	group := NewGroup(context.Background())
	defer group.Stop()

	done := make(chan struct{})
	group.Add(func(ctx context.Context) error {
		close(done)
		return nil
	})
	group.Wait()

	select {
	case <-done:
	default:
		t.Fatal("command did not run")
	}
}
