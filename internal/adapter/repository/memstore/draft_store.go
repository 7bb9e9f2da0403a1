package memstore

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/odalivan/experience_storefront/internal/core/domain"
)

type entry struct {
	draft     domain.CheckoutDraft
	expiresAt time.Time
}

// DraftStore keeps checkout drafts in process memory. It is the fallback
// when no Redis is configured and the store used in tests. Expired entries
// are rejected on read and removed by RunExpirySweep.
type DraftStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
	}
}

func (s *DraftStore) Save(_ context.Context, draft *domain.CheckoutDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[draft.ID] = entry{
		draft:     *draft,
		expiresAt: time.Now().Add(s.ttl),
	}

	return nil
}

func (s *DraftStore) Get(_ context.Context, id uuid.UUID) (*domain.CheckoutDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, domain.ErrDraftNotFound
	}

	draft := e.draft
	return &draft, nil
}

func (s *DraftStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// RunExpirySweep removes expired drafts every minute until ctx is done.
func (s *DraftStore) RunExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	log.Println("Draft expiry sweep started: checking expired checkout sessions every 1 minute...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Draft expiry sweep stopped.")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *DraftStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0

	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}

	if removed > 0 {
		log.Printf("Removed %d expired checkout sessions.", removed)
	}
}
