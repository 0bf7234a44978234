package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"feedindia/internal/utils"
	"feedindia/pkg/types"
)

type memoryConfig struct {
	now    func() time.Time
	policy TransitionPolicy
}

type MemoryOption func(*memoryConfig)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *memoryConfig) {
		c.now = now
	}
}

func WithTransitionPolicy(policy TransitionPolicy) MemoryOption {
	return func(c *memoryConfig) {
		c.policy = policy
	}
}

func newMemoryConfig(opts []MemoryOption) memoryConfig {
	cfg := memoryConfig{
		now:    time.Now,
		policy: PermissiveTransitions,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// MemoryDonationStore keeps one scope's records in process memory. Records
// are handed out as copies so callers can never mutate the collection.
type MemoryDonationStore struct {
	cfg memoryConfig

	mu         sync.RWMutex
	records []*types.Donation
	events  map[string][]*types.StatusEvent
	ids     idSequence
}

// NewMemoryDonationStore seeds the store with records in the order given.
func NewMemoryDonationStore(seed []*types.Donation, opts ...MemoryOption) *MemoryDonationStore {
	s := &MemoryDonationStore{
		cfg:     newMemoryConfig(opts),
		records: make([]*types.Donation, 0, len(seed)),
		events:  make(map[string][]*types.StatusEvent, len(seed)),
	}

	for _, d := range seed {
		record := *d
		s.records = append(s.records, &record)
		s.appendEvent(record.ID, record.Status, seededAt(&record))
	}

	return s
}

func seededAt(d *types.Donation) time.Time {
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt
	}
	if t, err := time.Parse(time.DateOnly, d.Date); err == nil {
		return t
	}
	return time.Time{}
}

func (s *MemoryDonationStore) Submit(_ context.Context, candidate *types.DonationCandidate) (*types.Donation, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	record := candidate.Record()
	now := s.cfg.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.ids.next(now)
	record.CreatedAt = now
	record.Date = now.Format(time.DateOnly)

	s.records = append([]*types.Donation{record}, s.records...)
	s.appendEvent(record.ID, record.Status, now)

	out := *record
	return &out, nil
}

// Add stores a record that was already accepted elsewhere, keeping its id.
// The record goes first, like a submission.
func (s *MemoryDonationStore) Add(d *types.Donation) error {
	if d == nil {
		return &types.ValidationError{Fields: []string{"donationType"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(d.ID) != nil {
		return fmt.Errorf("donation %s already exists", d.ID)
	}

	record := *d
	s.records = append([]*types.Donation{&record}, s.records...)
	s.appendEvent(record.ID, record.Status, seededAt(&record))
	return nil
}

func (s *MemoryDonationStore) List(_ context.Context) ([]*types.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Donation, 0, len(s.records))
	for _, d := range s.records {
		record := *d
		out = append(out, &record)
	}
	return out, nil
}

func (s *MemoryDonationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryDonationStore) Donation(_ context.Context, id string) (*types.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.find(id)
	if d == nil {
		return nil, donationNotFound(id)
	}

	out := *d
	return &out, nil
}

func (s *MemoryDonationStore) UpdateStatus(_ context.Context, id string, status types.DonationStatus) (*types.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.find(id)
	if d == nil {
		return nil, donationNotFound(id)
	}

	if err := checkTransition(s.cfg.policy, d.Status, status); err != nil {
		return nil, err
	}

	d.Status = status
	s.appendEvent(id, status, s.cfg.now())

	out := *d
	return &out, nil
}

func (s *MemoryDonationStore) Events(_ context.Context, id string) ([]*types.StatusEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.find(id) == nil {
		return nil, donationNotFound(id)
	}

	events := s.events[id]
	out := make([]*types.StatusEvent, 0, len(events))
	for _, e := range events {
		event := *e
		out = append(out, &event)
	}
	return out, nil
}

func (s *MemoryDonationStore) find(id string) *types.Donation {
	for _, d := range s.records {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (s *MemoryDonationStore) appendEvent(id string, status types.DonationStatus, at time.Time) {
	s.events[id] = append(s.events[id], &types.StatusEvent{
		ID:         utils.NanoID(),
		DonationID: id,
		Status:     status,
		CreatedAt:  at,
	})
}
