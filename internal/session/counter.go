package session

import (
	"context"
	"sync"

	"cloud.google.com/go/civil"
)

// Counter remembers which (user, card, date) triples have already been
// counted towards daily activity.
type Counter interface {
	// MarkCounted reports true the first time a triple is seen.
	MarkCounted(ctx context.Context, userID int64, cardID string, date civil.Date) (bool, error)
	// Unmark forgets a triple whose activity write was rolled back.
	Unmark(ctx context.Context, userID int64, cardID string, date civil.Date) error
}

type countKey struct {
	userID int64
	cardID string
}

// MemoryCounter is an in-process Counter. A Session gets its own unless the
// Builder is given a shared one. Only today and yesterday are kept: marking a
// triple drops every date older than the day before it.
type MemoryCounter struct {
	mu   sync.Mutex
	days map[civil.Date]map[countKey]struct{}
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{days: map[civil.Date]map[countKey]struct{}{}}
}

func (m *MemoryCounter) MarkCounted(ctx context.Context, userID int64, cardID string, date civil.Date) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldest := date.AddDays(-1)
	for d := range m.days {
		if d.Before(oldest) {
			delete(m.days, d)
		}
	}
	seen, ok := m.days[date]
	if !ok {
		seen = map[countKey]struct{}{}
		m.days[date] = seen
	}
	k := countKey{userID, cardID}
	if _, ok := seen[k]; ok {
		return false, nil
	}
	seen[k] = struct{}{}
	return true, nil
}

func (m *MemoryCounter) Unmark(ctx context.Context, userID int64, cardID string, date civil.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := m.days[date]
	delete(seen, countKey{userID, cardID})
	if len(seen) == 0 {
		delete(m.days, date)
	}
	return nil
}
