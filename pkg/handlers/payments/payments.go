package payments

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dlevine/gig-marketplace/pkg/api"
	"github.com/dlevine/gig-marketplace/pkg/mapping"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// PaymentsHandler holds the dependencies for payment-related handlers.
type PaymentsHandler struct {
	Store storage.PaymentReader
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentReader) *PaymentsHandler {
	return &PaymentsHandler{Store: store}
}

// ListPaymentsByGig handles retrieving every payment row for a gig.
func (h *PaymentsHandler) ListPaymentsByGig(w http.ResponseWriter, r *http.Request) {
	gigID := chi.URLParam(r, "gigID")

	domainPayments, err := h.Store.ListPaymentsByGig(r.Context(), gigID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve payments: %v", err), http.StatusInternalServerError)
		return
	}

	apiPayments := make([]*api.Payment, len(domainPayments))
	for i, payment := range domainPayments {
		apiPayments[i] = mapping.ToApiPayment(&payment)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiPayments); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
