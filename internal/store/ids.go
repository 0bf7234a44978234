package store

import (
	"fmt"
	"sync"
	"time"
)

// idSequence yields DON-<unix millis>, bumped past the previous id when two
// submissions land in the same millisecond.
type idSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *idSequence) next(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return fmt.Sprintf("DON-%d", ms)
}
