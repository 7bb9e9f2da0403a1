package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odalivan/experience_storefront/internal/core/domain"
	"github.com/odalivan/experience_storefront/internal/core/ports"
)

const (
	msgPromoApplied     = "Promo applied successfully!"
	msgPromoInvalid     = "Invalid promo code"
	msgPromoUnavailable = "Could not validate promo code."
	msgContactRequired  = "Name and Email are required."
	msgSelectionMissing = "Booking details are missing. Please go back and try again."
)

// SelectionParams are the loose strings the rendering surface forwards when
// the user picks a slot. They are untrusted: a bad price coerces to zero and
// missing fields are caught at submission, never at construction.
type SelectionParams struct {
	ExperienceID    string `json:"experienceId"`
	ExperienceTitle string `json:"experienceTitle"`
	BasePrice       string `json:"basePrice"`
	SlotDate        string `json:"slotDate"`
}

// NewDraft builds a fresh checkout draft from selection parameters.
func NewDraft(p SelectionParams) *domain.CheckoutDraft {
	title := p.ExperienceTitle
	if title == "" {
		title = "Experience"
	}

	basePrice, err := decimal.NewFromString(p.BasePrice)
	if err != nil {
		basePrice = decimal.Zero
	}

	return &domain.CheckoutDraft{
		ID:              uuid.New(),
		ExperienceID:    p.ExperienceID,
		ExperienceTitle: title,
		BasePrice:       basePrice,
		SlotDate:        p.SlotDate,
		Status:          domain.CheckoutEditing,
		CreatedAt:       time.Now(),
	}
}

// CheckoutWorkflow drives one draft through promo application and booking
// submission. All state lives in the draft; the workflow only holds the
// collaborators and an optional observer notified after every mutation.
type CheckoutWorkflow struct {
	mu       sync.Mutex
	draft    *domain.CheckoutDraft
	promo    ports.PromoValidator
	bookings ports.BookingGateway
	observer func(domain.CheckoutDraft)
}

func NewCheckoutWorkflow(draft *domain.CheckoutDraft, promo ports.PromoValidator, bookings ports.BookingGateway) *CheckoutWorkflow {
	return &CheckoutWorkflow{
		draft:    draft,
		promo:    promo,
		bookings: bookings,
	}
}

// SetObserver registers a callback invoked with a snapshot after each
// mutating operation.
func (w *CheckoutWorkflow) SetObserver(fn func(domain.CheckoutDraft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observer = fn
}

// Snapshot returns a copy of the current draft state.
func (w *CheckoutWorkflow) Snapshot() domain.CheckoutDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.draft
}

func (w *CheckoutWorkflow) notifyLocked() {
	if w.observer != nil {
		w.observer(*w.draft)
	}
}

// EditField updates one of the contact or promo text fields. Validation is
// deferred to Submit.
func (w *CheckoutWorkflow) EditField(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch field {
	case domain.FieldContactName:
		w.draft.ContactName = value
	case domain.FieldContactEmail:
		w.draft.ContactEmail = value
	case domain.FieldPromoCode:
		w.draft.PromoCodeText = value
	default:
		return fmt.Errorf("unknown checkout field %q", field)
	}

	w.notifyLocked()
	return nil
}

// ApplyPromoCode validates the typed promo code and applies the resulting
// discount. An empty code is a no-op. Lookup failures keep the previously
// applied discount and only surface a status message; an invalid code clears
// it. A response is discarded when a newer apply has been issued since.
func (w *CheckoutWorkflow) ApplyPromoCode(ctx context.Context) error {
	w.mu.Lock()

	code := w.draft.PromoCodeText
	if code == "" {
		w.mu.Unlock()
		return nil
	}

	w.draft.PromoSeq++
	token := w.draft.PromoSeq
	w.draft.Status = domain.CheckoutValidatingPromo
	w.draft.StatusMessage = ""
	w.notifyLocked()
	w.mu.Unlock()

	res, err := w.promo.ValidatePromo(ctx, code)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.PromoSeq != token {
		// A newer apply owns the draft now.
		return nil
	}

	switch {
	case err != nil:
		log.Printf("promo validation failed for draft %s: %v", w.draft.ID, err)
		w.draft.StatusMessage = msgPromoUnavailable
	case res.IsValid:
		switch res.DiscountType {
		case domain.DiscountFlat:
			w.draft.AppliedDiscount = res.Value
		case domain.DiscountPercent:
			w.draft.AppliedDiscount = w.draft.BasePrice.Mul(res.Value).Div(decimal.NewFromInt(100))
		}
		w.draft.StatusMessage = msgPromoApplied
	default:
		w.draft.AppliedDiscount = decimal.Zero
		if res.Message != "" {
			w.draft.StatusMessage = res.Message
		} else {
			w.draft.StatusMessage = msgPromoInvalid
		}
	}

	w.draft.Status = domain.CheckoutEditing
	w.notifyLocked()
	return nil
}

// Submit validates the draft and sends the booking to the backend. A
// precondition failure returns a domain.ValidationError without touching the
// network or the price state. Otherwise the draft reaches a terminal state
// and the matching outcome is returned.
func (w *CheckoutWorkflow) Submit(ctx context.Context) (domain.BookingOutcome, error) {
	w.mu.Lock()

	w.draft.ValidationError = ""

	if w.draft.ContactName == "" || w.draft.ContactEmail == "" {
		return w.rejectLocked(msgContactRequired)
	}
	if w.draft.ExperienceID == "" || w.draft.SlotDate == "" {
		return w.rejectLocked(msgSelectionMissing)
	}

	w.draft.SubmitSeq++
	token := w.draft.SubmitSeq
	w.draft.Status = domain.CheckoutSubmitting
	w.notifyLocked()

	req := domain.BookingRequest{
		ExperienceID: w.draft.ExperienceID,
		SlotDate:     w.draft.SlotDate,
		UserName:     w.draft.ContactName,
		UserEmail:    w.draft.ContactEmail,
		FinalPrice:   w.draft.FinalPrice().InexactFloat64(),
	}
	if w.draft.AppliedDiscount.IsPositive() {
		code := w.draft.PromoCodeText
		req.PromoCode = &code
	}
	w.mu.Unlock()

	_, err := w.bookings.CreateBooking(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	outcome := domain.BookingOutcome{Status: domain.OutcomeSucceeded}
	if err != nil {
		outcome = domain.BookingOutcome{
			Status:  domain.OutcomeFailed,
			Message: submissionFailureMessage(err),
		}
	}

	if w.draft.SubmitSeq != token {
		// Stale completion: report the outcome to the caller but leave the
		// draft to the newer submission.
		return outcome, nil
	}

	if outcome.Status == domain.OutcomeSucceeded {
		w.draft.Status = domain.CheckoutSucceeded
	} else {
		log.Printf("booking submission failed for draft %s: %v", w.draft.ID, err)
		w.draft.Status = domain.CheckoutFailed
		w.draft.FailureMessage = outcome.Message
	}
	w.notifyLocked()

	return outcome, nil
}

// rejectLocked records a validation error and releases the lock. The draft
// stays in Editing and no collaborator is called.
func (w *CheckoutWorkflow) rejectLocked(msg string) (domain.BookingOutcome, error) {
	w.draft.ValidationError = msg
	w.notifyLocked()
	w.mu.Unlock()
	return domain.BookingOutcome{}, domain.ValidationError(msg)
}

func submissionFailureMessage(err error) string {
	var rejected *domain.BookingRejectedError
	if errors.As(err, &rejected) {
		return rejected.Reason()
	}
	return domain.UnknownErrorMessage
}
