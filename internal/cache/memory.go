package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

type memoryEntry struct {
	value   float64
	expires time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expires)
}

type Memory struct {
	entries *xsync.MapOf[string, memoryEntry]
	ttl     time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: xsync.NewMapOf[string, memoryEntry](),
		ttl:     ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) (float64, bool, error) {
	entry, ok := m.entries.Load(key)
	if !ok {
		return 0, false, nil
	}
	if now := time.Now(); entry.expired(now) {
		m.deleteIfExpired(key, now)
		return 0, false, nil
	}
	return entry.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value float64) error {
	m.entries.Store(key, memoryEntry{value: value, expires: time.Now().Add(m.ttl)})
	return nil
}

// deleteIfExpired removes key unless a concurrent Set has refreshed it.
func (m *Memory) deleteIfExpired(key string, now time.Time) bool {
	_, kept := m.entries.Compute(key, func(old memoryEntry, loaded bool) (memoryEntry, bool) {
		return old, !loaded || old.expired(now)
	})
	return !kept
}

// Sweep drops every expired entry and returns how many were removed.
func (m *Memory) Sweep() int {
	now := time.Now()
	var expired []string
	m.entries.Range(func(key string, entry memoryEntry) bool {
		if entry.expired(now) {
			expired = append(expired, key)
		}
		return true
	})
	removed := 0
	for _, key := range expired {
		if m.deleteIfExpired(key, now) {
			removed++
		}
	}
	return removed
}

// Run sweeps expired entries every interval until ctx is done.
func (m *Memory) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Debug("Swept expired distances", "count", n)
			}
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	return m.entries.Size()
}
