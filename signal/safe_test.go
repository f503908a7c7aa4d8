package signal_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/sigslot/signal"
)

func TestSafeBasic(t *testing.T) {
	c := &counter{}
	var got []int
	fn := func(v int) { got = append(got, v) }

	sig := signal.NewSafe[int](signal.WithName("safe"))
	assert.Equal(t, "safe", sig.Name())
	sig.Connect(fn)
	signal.ConnectMethod(sig, c, (*counter).Add)

	sig.Emit(2)
	sig.Call(3)
	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, 5, c.total)

	require.True(t, sig.Disconnect(fn))
	require.True(t, signal.DisconnectMethod(sig, c, (*counter).Add))
	assert.Equal(t, 0, sig.Len())

	conn := sig.Connect(fn)
	require.True(t, conn.Disconnect())
	assert.False(t, conn.Disconnect())

	sig.Connect(func(int) { panic("boom") })
	assert.Error(t, sig.TryEmit(1))
	sig.Clear()
	assert.NoError(t, sig.TryEmit(1))
}

func TestSafeReentrant(t *testing.T) {
	sig := signal.NewSafe[int]()
	var calls int
	var self *signal.Connection
	self = sig.Connect(func(int) {
		calls++
		sig.Connect(func(int) { calls++ })
		self.Disconnect()
	})

	sig.Emit(1)
	assert.Equal(t, 1, calls)
	sig.Emit(1)
	assert.Equal(t, 2, calls)
}

func TestSafeConcurrent(t *testing.T) {
	const workers = 8
	const iterations = 200

	sig := signal.NewSafe[int]()
	var total atomic.Int64
	sig.Connect(func(v int) { total.Add(int64(v)) })

	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				conn := sig.Connect(func(int) {})
				sig.Len()
				conn.Disconnect()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sig.Emit(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*iterations), total.Load())
	assert.Equal(t, 1, sig.Len())
}
