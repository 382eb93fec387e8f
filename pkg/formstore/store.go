package formstore

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

type entry struct {
	id       uuid.UUID
	engine   *form.Engine
	lastUsed time.Time

	// serializes events for one instance
	mu      sync.Mutex
	removed atomic.Bool
}

type eviction struct {
	entry  *entry
	reason EvictReason
}

// Store keeps live form engines keyed by instance id. Lookups are LRU
// ordered; every access refreshes the idle timer.
type Store struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
	onEvict  EvictFunc

	mu     sync.Mutex
	items  map[uuid.UUID]*list.Element
	order  *list.List
	closed bool
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		now:      time.Now,
		logger:   slog.New(discard{}),
		items:    make(map[uuid.UUID]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores e under a fresh random id.
func (s *Store) Add(e *form.Engine) (uuid.UUID, error) {
	id := uuid.New()
	ent := &entry{id: id, engine: e, lastUsed: s.now()}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return uuid.Nil, ErrClosed
	}
	s.items[id] = s.order.PushFront(ent)

	var evicted []eviction
	for s.order.Len() > s.capacity {
		evicted = append(evicted, eviction{s.removeElement(s.order.Back()), EvictCapacity})
	}
	s.mu.Unlock()

	s.notify(evicted)
	return id, nil
}

// Do runs fn with exclusive access to the instance. Calls for the same id are
// serialized in arrival order; different ids run concurrently. fn may call
// Remove for its own id; calls still waiting then get ErrNotFound.
func (s *Store) Do(id uuid.UUID, fn func(*form.Engine) error) error {
	ent, err := s.touch(id)
	if err != nil {
		return err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()
	if ent.removed.Load() {
		return ErrNotFound
	}
	return fn(ent.engine)
}

// Remove drops the instance, e.g. after an accepted submit.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	elem, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	ent := s.removeElement(elem)
	s.mu.Unlock()

	s.notify([]eviction{{ent, EvictRemoved}})
	return true
}

// Len returns the number of stored instances, expired ones included until
// the next Sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Sweep evicts every expired instance and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	now := s.now()
	var evicted []eviction

	s.mu.Lock()
	// oldest at the back; stop at the first live one
	for elem := s.order.Back(); elem != nil; {
		ent := elem.Value.(*entry)
		if !s.expired(ent, now) {
			break
		}
		prev := elem.Prev()
		evicted = append(evicted, eviction{s.removeElement(elem), EvictExpired})
		elem = prev
	}
	s.mu.Unlock()

	s.notify(evicted)
	return len(evicted)
}

// Run sweeps expired instances every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.DebugContext(ctx, "expired form instances swept", slog.Int("count", n))
			}
		}
	}
}

// Ping fails once the store is closed. It fits httpserver.Check.
func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Close evicts everything and rejects further Add calls.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	evicted := make([]eviction, 0, s.order.Len())
	for s.order.Len() > 0 {
		evicted = append(evicted, eviction{s.removeElement(s.order.Back()), EvictClosed})
	}
	s.mu.Unlock()

	s.notify(evicted)
}

func (s *Store) touch(id uuid.UUID) (*entry, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	elem, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	ent := elem.Value.(*entry)
	now := s.now()
	if s.expired(ent, now) {
		s.removeElement(elem)
		s.mu.Unlock()
		s.notify([]eviction{{ent, EvictExpired}})
		return nil, ErrNotFound
	}

	ent.lastUsed = now
	s.order.MoveToFront(elem)
	s.mu.Unlock()
	return ent, nil
}

func (s *Store) expired(ent *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(ent.lastUsed) > s.ttl
}

// Must be called with lock held.
func (s *Store) removeElement(elem *list.Element) *entry {
	s.order.Remove(elem)
	ent := elem.Value.(*entry)
	delete(s.items, ent.id)
	ent.removed.Store(true)
	return ent
}

func (s *Store) notify(evicted []eviction) {
	for _, ev := range evicted {
		s.logger.Debug("form instance evicted",
			logger.Instance(ev.entry.id.String()),
			logger.Form(ev.entry.engine.Name()),
			slog.String("reason", string(ev.reason)),
		)
		if s.onEvict != nil {
			s.onEvict(ev.entry.id, ev.entry.engine, ev.reason)
		}
	}
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
