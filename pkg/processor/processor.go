package processor

import (
	"context"
)

// PaymentIntent is the processor-side view of a hold on the buyer's card.
type PaymentIntent struct {
	Id          string
	AmountCents int64
	Currency    string
	Status      string
	Captured    bool
}

// HoldRequest describes a new pre-authorization to place.
type HoldRequest struct {
	GigID       string
	AmountCents int64
	Currency    string
	CardToken   string
}

// PaymentProcessor is the boundary to the external service that moves real
// money. Implementations are injected into the ledger so tests can substitute
// a fake; no package-level client exists.
type PaymentProcessor interface {
	// CreateHold pre-authorizes the amount without capturing it.
	CreateHold(ctx context.Context, req HoldRequest) (*PaymentIntent, error)

	// RetrieveIntent fetches the current processor-side state of a hold.
	RetrieveIntent(ctx context.Context, intentID string) (*PaymentIntent, error)

	// CancelIntent releases an uncaptured hold back to the buyer.
	CancelIntent(ctx context.Context, intentID string) error

	// CaptureIntent captures a held amount, moving the money for real.
	CaptureIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}
