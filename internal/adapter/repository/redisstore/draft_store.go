package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/odalivan/experience_storefront/internal/core/domain"
)

// DraftStore keeps checkout drafts in Redis. Session expiry is delegated to
// key TTLs, refreshed on every save.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{
		client: client,
		ttl:    ttl,
	}
}

func draftKey(id uuid.UUID) string {
	return fmt.Sprintf("checkout:%s", id)
}

func (s *DraftStore) Save(ctx context.Context, draft *domain.CheckoutDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft %s: %w", draft.ID, err)
	}

	if err := s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft %s: %w", draft.ID, err)
	}

	return nil
}

func (s *DraftStore) Get(ctx context.Context, id uuid.UUID) (*domain.CheckoutDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrDraftNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load draft %s: %w", id, err)
	}

	var draft domain.CheckoutDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft %s: %w", id, err)
	}

	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, draftKey(id)).Err()
}
