package models

import (
	"time"
)

// GigStatus defines the possible states of a gig.
type GigStatus string

const (
	GigPendingWorkerAcceptance GigStatus = "PENDING_WORKER_ACCEPTANCE"
	GigAccepted                GigStatus = "ACCEPTED"
	GigInProgress              GigStatus = "IN_PROGRESS"
	GigPendingCompletionWorker GigStatus = "PENDING_COMPLETION_WORKER"
	GigPendingCompletionBuyer  GigStatus = "PENDING_COMPLETION_BUYER"
	GigCompleted               GigStatus = "COMPLETED"
	GigAwaitingPayment         GigStatus = "AWAITING_PAYMENT"
	GigPaid                    GigStatus = "PAID"
	GigDeclinedByWorker        GigStatus = "DECLINED_BY_WORKER"
	GigCancelledByBuyer        GigStatus = "CANCELLED_BY_BUYER"
	GigCancelledByWorker       GigStatus = "CANCELLED_BY_WORKER"
	GigCancelledByAdmin        GigStatus = "CANCELLED_BY_ADMIN"
)

// TerminalGigStatuses are the states a gig can never leave.
var TerminalGigStatuses = []GigStatus{
	GigPaid,
	GigDeclinedByWorker,
	GigCancelledByBuyer,
	GigCancelledByWorker,
	GigCancelledByAdmin,
}

// IsTerminal reports whether the status admits no further transition.
func (s GigStatus) IsTerminal() bool {
	for _, t := range TerminalGigStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// Role identifies which side of a gig an actor is on.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleWorker Role = "worker"
)

// CancellationStatus maps an actor's role to the cancellation state it produces.
func (r Role) CancellationStatus() GigStatus {
	if r == RoleBuyer {
		return GigCancelledByBuyer
	}
	return GigCancelledByWorker
}

// OfferAction is a caller-requested transition on a gig offer.
type OfferAction string

const (
	ActionAccept   OfferAction = "accept"
	ActionCancel   OfferAction = "cancel"
	ActionStart    OfferAction = "start"
	ActionComplete OfferAction = "complete"
)

// Gig represents one bookable engagement between a buyer and a worker.
// WorkerUserId is nil while the offer sits in the open pool; once set on a
// pending offer, only that worker may respond to it.
type Gig struct {
	Id              string
	Title           string
	BuyerUserId     string
	WorkerUserId    *string
	StartAt         time.Time
	EndAt           time.Time
	ExpiresAt       *time.Time
	HourlyRateCents int64
	TotalPriceCents int64
	TipCents        int64
	Location        *Location
	StatusInternal  GigStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Expired reports whether the offer has lapsed. A nil ExpiresAt never expires.
func (g *Gig) Expired(now time.Time) bool {
	return g.ExpiresAt != nil && g.ExpiresAt.Before(now)
}

// Directed reports whether the offer names the worker who must respond to it.
func (g *Gig) Directed() bool {
	return g.WorkerUserId != nil
}

// PaymentStatus defines the possible states of a payment hold.
// Transitions run forward only: PENDING -> COMPLETED or PENDING -> REFUNDED.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment represents one financial hold tied to a gig. PaymentIntentId is the
// processor-side identifier of the hold; it is nil for rows that never reached
// the processor.
type Payment struct {
	Id               string
	GigId            string
	PaymentIntentId  *string
	PayerUserId      string
	ReceiverUserId   string
	AmountGrossCents int64
	AppFeeCents      int64
	AmountNetCents   int64
	Status           PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// User is the internal identity row an external auth identifier resolves to.
type User struct {
	Id          string
	ExternalId  string
	DisplayName string
	CreatedAt   time.Time
}
