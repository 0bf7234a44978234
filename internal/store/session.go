package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type session struct {
	donations *MemoryDonationStore
	lastSeen  time.Time
}

// SessionRegistry gives every donor browser session its own unpersisted
// donation store.
type SessionRegistry struct {
	maxIdle time.Duration
	now     func() time.Time
	opts    []MemoryOption

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionRegistry(maxIdle time.Duration, opts ...MemoryOption) *SessionRegistry {
	cfg := newMemoryConfig(opts)
	return &SessionRegistry{
		maxIdle:  maxIdle,
		now:      cfg.now,
		opts:     opts,
		sessions: make(map[string]*session),
	}
}

// Store returns the session's donation store, creating it on first use.
func (r *SessionRegistry) Store(sessionID string) *MemoryDonationStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[sessionID]
	if !ok {
		sess = &session{donations: NewMemoryDonationStore(nil, r.opts...)}
		r.sessions[sessionID] = sess
	}
	sess.lastSeen = r.now()

	return sess.donations
}

// Lookup returns the session's store without creating one.
func (r *SessionRegistry) Lookup(sessionID string) (*MemoryDonationStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	sess.lastSeen = r.now()
	return sess.donations, true
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were
// dropped.
func (r *SessionRegistry) Sweep() int {
	if r.maxIdle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.maxIdle)
	dropped := 0
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps on every tick until ctx is done.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration, logger *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := r.Sweep(); dropped > 0 {
				logger.WithField("dropped", dropped).Debug("swept idle donor sessions")
			}
		}
	}
}
