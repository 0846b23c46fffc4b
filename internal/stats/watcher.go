package stats

import (
	"context"
	"sync"
	"time"
)

// Watcher samples OS network counters once per second and keeps the last
// two snapshots so consumers can render per-second rates.
type Watcher struct {
	mu   sync.RWMutex
	prev NetStats
	cur  NetStats
}

func NewWatcher() *Watcher {
	return &Watcher{}
}

// Start launches the sampling loop. It returns immediately and stops when
// ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	w.cur = GetNetworkStats()
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.mu.Lock()
				w.prev = w.cur
				w.cur = GetNetworkStats()
				w.mu.Unlock()
			}
		}
	}()
}

// Last returns the two most recent snapshots, previous first.
func (w *Watcher) Last() (prev, cur NetStats) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.prev, w.cur
}
