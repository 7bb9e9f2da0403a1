package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/odalivan/experience_storefront/internal/core/domain"
)

// ExperienceCatalog reads the experience catalog from the booking backend.
// Every call is a fresh read, no caching.
type ExperienceCatalog interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	GetExperience(ctx context.Context, id string) (*domain.Experience, error)
}

// PromoValidator checks a raw promo code against the backend.
type PromoValidator interface {
	ValidatePromo(ctx context.Context, promoCode string) (*domain.PromoResult, error)
}

// BookingGateway submits a finished booking request to the backend.
type BookingGateway interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// DraftStore persists checkout drafts between requests for the lifetime of
// one session. Implementations apply their own TTL.
type DraftStore interface {
	Save(ctx context.Context, draft *domain.CheckoutDraft) error
	Get(ctx context.Context, id uuid.UUID) (*domain.CheckoutDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
