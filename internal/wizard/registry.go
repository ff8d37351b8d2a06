package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrTooManySessions = errors.New("too many open wizard sessions")
)

type entry struct {
	controller *Controller
	lastSeen   time.Time
}

// Registry keeps in-memory wizard sessions. Nothing here is persisted: a
// session that idles past its ttl, or the process exiting, drops the draft.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry

	newController func() *Controller
	ttl           time.Duration
	maxSessions   int
	now           func() time.Time
}

func NewRegistry(newController func() *Controller, ttl time.Duration, maxSessions int) *Registry {
	return &Registry{
		sessions:      make(map[uuid.UUID]*entry),
		newController: newController,
		ttl:           ttl,
		maxSessions:   maxSessions,
		now:           time.Now,
	}
}

func (r *Registry) Open() (uuid.UUID, *Controller, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.sweepLocked()
		if len(r.sessions) >= r.maxSessions {
			return uuid.Nil, nil, ErrTooManySessions
		}
	}

	c := r.newController()
	r.sessions[id] = &entry{controller: c, lastSeen: r.now()}
	return id, c, nil
}

// Get returns a live session and refreshes its idle timer.
func (r *Registry) Get(id uuid.UUID) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(e) && e.controller.Status() != StatusSubmitting {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.controller, nil
}

func (r *Registry) Discard(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry) bool {
	return r.ttl > 0 && r.now().Sub(e.lastSeen) > r.ttl
}

// Sweep drops expired sessions and reports how many were removed. Sessions
// in the middle of a submission are kept until it settles.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

func (r *Registry) sweepLocked() int {
	removed := 0
	for id, e := range r.sessions {
		if !r.expired(e) {
			continue
		}
		if e.controller.Status() == StatusSubmitting {
			continue
		}
		delete(r.sessions, id)
		removed++
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := r.Sweep()
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
