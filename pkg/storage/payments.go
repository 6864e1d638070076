package storage

import (
	"context"

	"github.com/dlevine/gig-marketplace/pkg/models"
)

// PaymentReader defines the interface for reading payment rows.
type PaymentReader interface {
	// ListPaymentsByGig retrieves every payment row referencing the gig.
	ListPaymentsByGig(ctx context.Context, gigID string) ([]models.Payment, error)
}

// PaymentWriter mutates payment rows. Status moves forward only; the guards in
// each statement refuse to pull a COMPLETED or REFUNDED row back.
type PaymentWriter interface {
	// CreatePayment inserts a new payment row.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// MarkPaymentsRefunded batch-moves the given PENDING rows to REFUNDED.
	MarkPaymentsRefunded(ctx context.Context, paymentIDs []string) error

	// MarkPaymentCompleted moves a single PENDING row to COMPLETED.
	// Zero rows affected is reported as ErrUpdateConflict.
	MarkPaymentCompleted(ctx context.Context, paymentID string) error
}

// PaymentStore combines the reader and writer interfaces.
type PaymentStore interface {
	PaymentReader
	PaymentWriter
}
