package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/odalivan/experience_storefront/internal/core/domain"
	"github.com/odalivan/experience_storefront/internal/core/ports"
	"github.com/odalivan/experience_storefront/internal/core/services"
)

// CheckoutHandler exposes the checkout workflow as a session API. Drafts
// live in the DraftStore between requests; each request resumes the
// workflow, applies one operation and persists the new snapshot.
type CheckoutHandler struct {
	store    ports.DraftStore
	promo    ports.PromoValidator
	bookings ports.BookingGateway
}

func NewCheckoutHandler(store ports.DraftStore, promo ports.PromoValidator, bookings ports.BookingGateway) *CheckoutHandler {
	return &CheckoutHandler{
		store:    store,
		promo:    promo,
		bookings: bookings,
	}
}

type draftResponse struct {
	ID              string  `json:"id"`
	ExperienceID    string  `json:"experienceId"`
	ExperienceTitle string  `json:"experienceTitle"`
	BasePrice       float64 `json:"basePrice"`
	SlotDate        string  `json:"slotDate"`
	ContactName     string  `json:"contactName"`
	ContactEmail    string  `json:"contactEmail"`
	PromoCode       string  `json:"promoCode"`
	AppliedDiscount float64 `json:"appliedDiscount"`
	FinalPrice      float64 `json:"finalPrice"`
	Status          string  `json:"status"`
	StatusMessage   string  `json:"statusMessage,omitempty"`
	ValidationError string  `json:"validationError,omitempty"`
}

func newDraftResponse(d domain.CheckoutDraft) draftResponse {
	return draftResponse{
		ID:              d.ID.String(),
		ExperienceID:    d.ExperienceID,
		ExperienceTitle: d.ExperienceTitle,
		BasePrice:       d.BasePrice.InexactFloat64(),
		SlotDate:        d.SlotDate,
		ContactName:     d.ContactName,
		ContactEmail:    d.ContactEmail,
		PromoCode:       d.PromoCodeText,
		AppliedDiscount: d.AppliedDiscount.InexactFloat64(),
		FinalPrice:      d.FinalPrice().InexactFloat64(),
		Status:          string(d.Status),
		StatusMessage:   d.StatusMessage,
		ValidationError: d.ValidationError,
	}
}

type submitResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// CreateDraft starts a checkout session from the selection parameters the
// rendering surface forwards. The parameters are untrusted and never
// rejected here.
func (h *CheckoutHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	var params services.SelectionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	draft := services.NewDraft(params)

	if err := h.store.Save(r.Context(), draft); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newDraftResponse(*draft))
}

// Session routes /checkout/{id} and /checkout/{id}/{action}.
func (h *CheckoutHandler) Session(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rest := strings.TrimPrefix(r.URL.Path, "/checkout/")
	parts := strings.SplitN(rest, "/", 2)

	id, err := uuid.Parse(parts[0])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "checkout session not found"})
		return
	}

	draft, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "checkout session not found"})
		} else {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		}

		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
			return
		}

		json.NewEncoder(w).Encode(newDraftResponse(*draft))
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	wf := services.NewCheckoutWorkflow(draft, h.promo, h.bookings)

	switch parts[1] {
	case "fields":
		h.editField(w, r, wf)
	case "promo":
		h.applyPromo(w, r, wf)
	case "submit":
		h.submit(w, r, wf)
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown checkout action"})
	}
}

func (h *CheckoutHandler) editField(w http.ResponseWriter, r *http.Request, wf *services.CheckoutWorkflow) {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	if err := wf.EditField(body.Field, body.Value); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	h.respondSnapshot(w, r, wf)
}

func (h *CheckoutHandler) applyPromo(w http.ResponseWriter, r *http.Request, wf *services.CheckoutWorkflow) {
	if err := wf.ApplyPromoCode(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	h.respondSnapshot(w, r, wf)
}

func (h *CheckoutHandler) submit(w http.ResponseWriter, r *http.Request, wf *services.CheckoutWorkflow) {
	outcome, err := wf.Submit(r.Context())

	if err != nil {
		var validation domain.ValidationError
		if errors.As(err, &validation) {
			snapshot := wf.Snapshot()
			if saveErr := h.store.Save(r.Context(), &snapshot); saveErr != nil {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
				return
			}

			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"validationError": validation.Error()})
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	// Terminal outcome: the session is done, discard the draft and hand the
	// result surface its destination.
	snapshot := wf.Snapshot()
	_ = h.store.Delete(r.Context(), snapshot.ID)

	json.NewEncoder(w).Encode(submitResponse{
		Status:   string(outcome.Status),
		Message:  outcome.Message,
		Redirect: outcome.RedirectPath(),
	})
}

func (h *CheckoutHandler) respondSnapshot(w http.ResponseWriter, r *http.Request, wf *services.CheckoutWorkflow) {
	snapshot := wf.Snapshot()

	if err := h.store.Save(r.Context(), &snapshot); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	json.NewEncoder(w).Encode(newDraftResponse(snapshot))
}
