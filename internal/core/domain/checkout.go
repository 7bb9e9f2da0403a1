package domain

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutStatus string

const (
	CheckoutEditing         CheckoutStatus = "EDITING"
	CheckoutValidatingPromo CheckoutStatus = "VALIDATING_PROMO"
	CheckoutSubmitting      CheckoutStatus = "SUBMITTING"
	CheckoutSucceeded       CheckoutStatus = "SUCCEEDED"
	CheckoutFailed          CheckoutStatus = "FAILED"
)

// Editable draft fields, addressed by the wire names the frontend sends.
const (
	FieldContactName  = "contactName"
	FieldContactEmail = "contactEmail"
	FieldPromoCode    = "promoCode"
)

// CheckoutDraft is the state of one checkout session. It is owned by a
// single session and mutated only through the checkout workflow.
// PromoSeq and SubmitSeq are monotonic request tokens: a collaborator
// response is applied only if its token is still the latest for that
// operation kind.
type CheckoutDraft struct {
	ID              uuid.UUID       `json:"id"`
	ExperienceID    string          `json:"experienceId"`
	ExperienceTitle string          `json:"experienceTitle"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	SlotDate        string          `json:"slotDate"`
	ContactName     string          `json:"contactName"`
	ContactEmail    string          `json:"contactEmail"`
	PromoCodeText   string          `json:"promoCodeText"`
	AppliedDiscount decimal.Decimal `json:"appliedDiscount"`
	StatusMessage   string          `json:"statusMessage"`
	ValidationError string          `json:"validationError"`
	Status          CheckoutStatus  `json:"status"`
	FailureMessage  string          `json:"failureMessage"`
	PromoSeq        uint64          `json:"promoSeq"`
	SubmitSeq       uint64          `json:"submitSeq"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// FinalPrice derives the payable total. It is never stored.
func FinalPrice(basePrice, discount decimal.Decimal) decimal.Decimal {
	total := basePrice.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

func (d *CheckoutDraft) FinalPrice() decimal.Decimal {
	return FinalPrice(d.BasePrice, d.AppliedDiscount)
}

type DiscountType string

const (
	DiscountFlat    DiscountType = "flat"
	DiscountPercent DiscountType = "percent"
)

// PromoResult is the promo validation backend's answer. Validity is encoded
// in the body, not the HTTP status.
type PromoResult struct {
	IsValid      bool            `json:"isValid"`
	DiscountType DiscountType    `json:"discountType"`
	Value        decimal.Decimal `json:"value"`
	Message      string          `json:"message"`
}

// BookingRequest is the payload sent to the booking backend. PromoCode is
// nil unless a discount was actually applied.
type BookingRequest struct {
	ExperienceID string  `json:"experienceId"`
	SlotDate     string  `json:"slotDate"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	PromoCode    *string `json:"promoCode"`
	FinalPrice   float64 `json:"finalPrice"`
}

// BookingConfirmation is the backend's success payload. The booking record
// itself is passed through untouched.
type BookingConfirmation struct {
	Message string          `json:"message"`
	Booking json.RawMessage `json:"booking"`
}

type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "success"
	OutcomeFailed    OutcomeStatus = "failure"
)

// BookingOutcome is the terminal result of a submission, handed to the
// rendering surface.
type BookingOutcome struct {
	Status  OutcomeStatus
	Message string
}

// RedirectPath builds the result-page location for this outcome. The failure
// message is query-escaped so it survives the URL channel.
func (o BookingOutcome) RedirectPath() string {
	if o.Status == OutcomeSucceeded {
		return "/result?status=success"
	}
	return "/result?status=failure&message=" + url.QueryEscape(o.Message)
}
