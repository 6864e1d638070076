// Package ledger owns the payment rows tied to each gig and drives the
// external processor through hold, capture and cancellation.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/processor"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// DefaultPlatformFeeBps is the platform's cut of the gross amount, in basis points.
const DefaultPlatformFeeBps = 1000

// Ledger transitions payment rows through their forward-only lifecycle and
// keeps them consistent with the processor-side holds.
type Ledger struct {
	Payments       storage.PaymentStore
	Processor      processor.PaymentProcessor
	Logger         *slog.Logger
	Currency       string
	PlatformFeeBps int64
}

// New creates a new Ledger.
func New(payments storage.PaymentStore, proc processor.PaymentProcessor, logger *slog.Logger, currency string, feeBps int64) *Ledger {
	if feeBps <= 0 {
		feeBps = DefaultPlatformFeeBps
	}
	return &Ledger{
		Payments:       payments,
		Processor:      proc,
		Logger:         logger,
		Currency:       currency,
		PlatformFeeBps: feeBps,
	}
}

// PlaceHold pre-authorizes the gig's total price against the buyer's card and
// records the PENDING payment row for it.
func (l *Ledger) PlaceHold(ctx context.Context, gig *models.Gig, cardToken string) (*models.Payment, error) {
	intent, err := l.Processor.CreateHold(ctx, processor.HoldRequest{
		GigID:       gig.Id,
		AmountCents: gig.TotalPriceCents,
		Currency:    l.Currency,
		CardToken:   cardToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place hold for gig %s: %w", gig.Id, err)
	}

	fee := gig.TotalPriceCents * l.PlatformFeeBps / 10000
	now := time.Now()
	receiver := ""
	if gig.WorkerUserId != nil {
		receiver = *gig.WorkerUserId
	}

	payment := &models.Payment{
		Id:               uuid.NewString(),
		GigId:            gig.Id,
		PaymentIntentId:  &intent.Id,
		PayerUserId:      gig.BuyerUserId,
		ReceiverUserId:   receiver,
		AmountGrossCents: gig.TotalPriceCents,
		AppFeeCents:      fee,
		AmountNetCents:   gig.TotalPriceCents - fee,
		Status:           models.PaymentPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := l.Payments.CreatePayment(ctx, payment); err != nil {
		// The hold exists at the processor without a ledger row; log enough to
		// reconcile it by hand.
		l.Logger.Error("hold placed but payment row not recorded",
			slog.String("gig_id", gig.Id),
			slog.String("payment_intent_id", intent.Id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to record payment for gig %s: %w", gig.Id, err)
	}

	return payment, nil
}

// CancelRelatedPayments releases every hold tied to the gig. Processor
// cancellations are issued concurrently and the call waits for all of them to
// settle; the ledger rows move to REFUNDED only if every cancellation
// succeeded. On any failure the rows are left untouched and each failed
// payment id is logged for manual reconciliation.
func (l *Ledger) CancelRelatedPayments(ctx context.Context, gigID string) error {
	payments, err := l.Payments.ListPaymentsByGig(ctx, gigID)
	if err != nil {
		return fmt.Errorf("failed to load payments for gig %s: %w", gigID, err)
	}
	if len(payments) == 0 {
		return fmt.Errorf("cancel payments for gig %s: %w", gigID, storage.ErrNoPaymentsForGig)
	}

	// Plain errgroup, no shared context cancellation: every cancellation must
	// run to completion so the full set of failures can be reported.
	var g errgroup.Group
	failures := make([]error, len(payments))
	for i := range payments {
		p := payments[i]
		if p.PaymentIntentId == nil {
			continue
		}
		idx := i
		g.Go(func() error {
			if err := l.Processor.CancelIntent(ctx, *p.PaymentIntentId); err != nil {
				failures[idx] = err
				return fmt.Errorf("failed to cancel intent %s: %w", *p.PaymentIntentId, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for i, ferr := range failures {
			if ferr != nil {
				l.Logger.Error("payment cancellation failed at processor",
					slog.String("gig_id", gigID),
					slog.String("payment_id", payments[i].Id),
					slog.String("error", ferr.Error()),
				)
			}
		}
		return fmt.Errorf("cancel payments for gig %s: %w", gigID, err)
	}

	ids := make([]string, len(payments))
	for i, p := range payments {
		ids[i] = p.Id
	}
	if err := l.Payments.MarkPaymentsRefunded(ctx, ids); err != nil {
		return fmt.Errorf("cancel payments for gig %s: %w", gigID, err)
	}

	return nil
}

// SettleGigPayments captures every held intent for the gig. Unlike
// cancellation, each ledger row is moved to COMPLETED individually as its own
// capture succeeds, so a partial settlement is visible row by row and a retry
// only touches the rows still PENDING. The intent's processor-side state is
// retrieved first: an intent a prior attempt already captured is not captured
// again, its row is just brought up to date.
func (l *Ledger) SettleGigPayments(ctx context.Context, gigID string) error {
	payments, err := l.Payments.ListPaymentsByGig(ctx, gigID)
	if err != nil {
		return fmt.Errorf("failed to load payments for gig %s: %w", gigID, err)
	}
	if len(payments) == 0 {
		return fmt.Errorf("settle payments for gig %s: %w", gigID, storage.ErrNoPaymentsForGig)
	}

	var g errgroup.Group
	for i := range payments {
		p := payments[i]
		if p.Status != models.PaymentPending || p.PaymentIntentId == nil {
			continue
		}
		g.Go(func() error {
			intent, err := l.Processor.RetrieveIntent(ctx, *p.PaymentIntentId)
			if err != nil {
				return fmt.Errorf("failed to retrieve intent %s: %w", *p.PaymentIntentId, err)
			}
			if !intent.Captured {
				if _, err := l.Processor.CaptureIntent(ctx, *p.PaymentIntentId); err != nil {
					l.Logger.Error("payment capture failed at processor",
						slog.String("gig_id", gigID),
						slog.String("payment_id", p.Id),
						slog.String("error", err.Error()),
					)
					return fmt.Errorf("failed to capture intent %s: %w", *p.PaymentIntentId, err)
				}
			}
			if err := l.Payments.MarkPaymentCompleted(ctx, p.Id); err != nil {
				return fmt.Errorf("failed to mark payment %s completed: %w", p.Id, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("settle payments for gig %s: %w", gigID, err)
	}

	return nil
}
