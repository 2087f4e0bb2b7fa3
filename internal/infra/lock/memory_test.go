package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockerSerializesSameKey(t *testing.T) {
	l := NewMemoryLocker()
	date := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := l.Acquire(context.Background(), 1, date)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			// Unsynchronized increment; the race detector flags this if two
			// goroutines ever hold the same key at once.
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestMemoryLockerIndependentKeys(t *testing.T) {
	l := NewMemoryLocker()
	date := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)

	release1, err := l.Acquire(context.Background(), 1, date)
	require.NoError(t, err)
	defer release1()

	// A different shop on the same date must not block.
	done := make(chan struct{})
	go func() {
		release2, err := l.Acquire(context.Background(), 2, date)
		assert.NoError(t, err)
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different shop blocked")
	}
}
