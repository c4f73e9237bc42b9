package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	var calls int32
	debounced := New(
		50*time.Millisecond,
		func() {
			atomic.AddInt32(&calls, 1)
		},
	)
	for i := 0; i < 10; i++ {
		debounced()
		time.Sleep(5 * time.Millisecond)
	}
	require.Eventually(
		t,
		func() bool {
			return atomic.LoadInt32(&calls) == 1
		},
		time.Second,
		10*time.Millisecond,
	)
	// No further call should land
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceSeparateWindows(t *testing.T) {
	var calls int32
	debounced := New(
		20*time.Millisecond,
		func() {
			atomic.AddInt32(&calls, 1)
		},
	)
	debounced()
	time.Sleep(60 * time.Millisecond)
	debounced()
	require.Eventually(
		t,
		func() bool {
			return atomic.LoadInt32(&calls) == 2
		},
		time.Second,
		10*time.Millisecond,
	)
}
