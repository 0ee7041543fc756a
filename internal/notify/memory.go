package notify

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemory implements Store with in-process concurrency safety. It backs
// handler tests and dev mode without a database.
type InMemory struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]Notification
}

var _ Store = (*InMemory)(nil)

// NewInMemory creates an empty store.
func NewInMemory() *InMemory {
	return &InMemory{items: make(map[int64]Notification)}
}

func (s *InMemory) List(ctx context.Context, limit int) ([]Notification, error) {
	limit = ClampLimit(limit)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(limit), nil
}

func (s *InMemory) Create(ctx context.Context, n *Notification) error {
	if n == nil || strings.TrimSpace(n.Title) == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	n.ID = s.seq
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	s.items[n.ID] = *n
	return nil
}

func (s *InMemory) SetRead(ctx context.Context, id int64, read bool) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.items[id]
	if !ok {
		return Notification{}, ErrNotFound
	}
	n.IsRead = read
	s.items[id] = n
	return n, nil
}

func (s *InMemory) MarkAllRead(ctx context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.items {
		if !n.IsRead {
			n.IsRead = true
			s.items[id] = n
		}
	}
	return s.snapshotLocked(DefaultListLimit), nil
}

func (s *InMemory) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// snapshotLocked returns up to limit notifications, newest first.
func (s *InMemory) snapshotLocked(limit int) []Notification {
	out := make([]Notification, 0, len(s.items))
	for _, n := range s.items {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
