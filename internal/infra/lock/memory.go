package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is the single-process fallback used when no Redis address is
// configured.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, shopID uint, date time.Time) (func(), error) {
	k := key(shopID, date)

	l.mu.Lock()
	m, ok := l.locks[k]
	if !ok {
		m = &sync.Mutex{}
		l.locks[k] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
