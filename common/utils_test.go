package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type nilable struct{}

func TestIsNil(t *testing.T) {
	var ptr *nilable
	var iface interface{} = ptr

	require.True(t, IsNil(nil))
	require.True(t, IsNil(ptr))
	require.True(t, IsNil(iface))
	require.False(t, IsNil(&nilable{}))
	require.False(t, IsNil(5))
}

func TestLogOnPanicRepanics(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		defer LogOnPanic()
		panic("boom")
	})
}
