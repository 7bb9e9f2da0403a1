package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/odalivan/experience_storefront/internal/core/domain"
)

// Client talks to the booking backend's REST API. It implements the
// ExperienceCatalog, PromoValidator and BookingGateway ports.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

func (c *Client) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/experiences", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch experiences: unexpected status %d", resp.StatusCode)
	}

	var experiences []domain.Experience
	if err := json.NewDecoder(resp.Body).Decode(&experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}

	return experiences, nil
}

func (c *Client) GetExperience(ctx context.Context, id string) (*domain.Experience, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/experiences/"+id, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience %s: %w", id, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrExperienceNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch experience %s: unexpected status %d", id, resp.StatusCode)
	}

	var experience domain.Experience
	if err := json.NewDecoder(resp.Body).Decode(&experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience %s: %w", id, err)
	}

	return &experience, nil
}

func (c *Client) ValidatePromo(ctx context.Context, promoCode string) (*domain.PromoResult, error) {
	body, err := json.Marshal(map[string]string{"promoCode": promoCode})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/promo/validate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate promo code: %w", err)
	}

	defer resp.Body.Close()

	// Validity is encoded in the body; the endpoint answers 200 either way.
	var result domain.PromoResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode promo result: %w", err)
	}

	return &result, nil
}

func (c *Client) CreateBooking(ctx context.Context, booking domain.BookingRequest) (*domain.BookingConfirmation, error) {
	body, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection struct {
			Message string `json:"message"`
		}

		// A malformed error body still fails the booking, just without a
		// specific reason.
		_ = json.NewDecoder(resp.Body).Decode(&rejection)

		return nil, &domain.BookingRejectedError{Message: rejection.Message}
	}

	var confirmation domain.BookingConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode booking confirmation: %w", err)
	}

	return &confirmation, nil
}
