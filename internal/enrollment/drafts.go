package enrollment

import (
	"errors"
	"sync"
	"time"
)

// ErrNoDraft means there is no enrollment in flight for the
// (student, event) pair.
var ErrNoDraft = errors.New("no enrollment in progress for this event")

type draftKey struct {
	rollNumber string
	eventID    string
}

type draftEntry struct {
	mu        sync.Mutex
	workflow  *Workflow
	expiresAt time.Time
}

// DraftStore holds at most one in-flight workflow per (student, event).
// Every stored workflow is owned by the store: reads hand out snapshots and
// mutations go through Mutate, which locks the entry so overlapping requests
// for the same draft cannot interleave. Abandoned drafts expire after the
// TTL and are dropped by Sweep.
type DraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[draftKey]*draftEntry
	now    func() time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		drafts: make(map[draftKey]*draftEntry),
		now:    time.Now,
	}
}

// Put stores a copy of the draft and refreshes its expiry.
func (s *DraftStore) Put(rollNumber, eventID string, w *Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[draftKey{rollNumber, eventID}] = &draftEntry{
		workflow:  w.Clone(),
		expiresAt: s.now().Add(s.ttl),
	}
}

// Get returns a snapshot of the draft, safe to render while other requests
// keep mutating the stored copy.
func (s *DraftStore) Get(rollNumber, eventID string) (*Workflow, bool) {
	s.mu.Lock()
	e, ok := s.drafts[draftKey{rollNumber, eventID}]
	if !ok || s.now().After(e.expiresAt) {
		s.mu.Unlock()
		return nil, false
	}

	e.mu.Lock()
	s.mu.Unlock()
	defer e.mu.Unlock()

	return e.workflow.Clone(), true
}

// Mutate runs fn on the stored draft under the entry lock and refreshes the
// expiry. ErrNoDraft when nothing is in flight; errors from fn pass through
// and the draft stays put for a retry.
func (s *DraftStore) Mutate(rollNumber, eventID string, fn func(*Workflow) error) error {
	s.mu.Lock()
	e, ok := s.drafts[draftKey{rollNumber, eventID}]
	if !ok || s.now().After(e.expiresAt) {
		s.mu.Unlock()
		return ErrNoDraft
	}

	e.mu.Lock()
	s.mu.Unlock()
	defer e.mu.Unlock()

	err := fn(e.workflow)

	s.mu.Lock()
	e.expiresAt = s.now().Add(s.ttl)
	s.mu.Unlock()

	return err
}

func (s *DraftStore) Remove(rollNumber, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, draftKey{rollNumber, eventID})
}

// Sweep drops expired drafts and returns how many were removed.
func (s *DraftStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for key, e := range s.drafts {
		if now.After(e.expiresAt) {
			delete(s.drafts, key)
			removed++
		}
	}

	return removed
}
