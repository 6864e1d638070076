// Package lifecycle enforces the legal status transitions of a gig and
// triggers the payment side effects each transition implies.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// ExpiredOfferMessage is shown to callers when an offer has lapsed. It is
// deliberately distinct from the not-found message so clients can render a
// specific explanation.
const ExpiredOfferMessage = "This gig offer has expired"

// ActionResult is the uniform outcome every controller operation reports.
// No error escapes an operation; failures are folded into this shape.
type ActionResult struct {
	Success    bool
	Error      string
	StatusCode int
}

func ok() ActionResult {
	return ActionResult{Success: true, StatusCode: http.StatusOK}
}

func fail(code int, msg string) ActionResult {
	return ActionResult{Success: false, Error: msg, StatusCode: code}
}

// PaymentLedger is the slice of the ledger the controller drives.
type PaymentLedger interface {
	PlaceHold(ctx context.Context, gig *models.Gig, cardToken string) (*models.Payment, error)
	CancelRelatedPayments(ctx context.Context, gigID string) error
	SettleGigPayments(ctx context.Context, gigID string) error
}

// Controller owns the authoritative status of gig rows. Every operation
// re-reads current state before acting; nothing is cached across calls.
type Controller struct {
	Store  storage.Storage
	Ledger PaymentLedger
	Logger *slog.Logger
	Now    func() time.Time
}

// NewController creates a new Controller.
func NewController(store storage.Storage, ledger PaymentLedger, logger *slog.Logger) *Controller {
	return &Controller{Store: store, Ledger: ledger, Logger: logger, Now: time.Now}
}

// AcceptOffer lets the assigned worker accept a directed pending offer.
func (c *Controller) AcceptOffer(ctx context.Context, gigID, workerExternalID string) ActionResult {
	worker, res := c.resolveUser(ctx, workerExternalID)
	if worker == nil {
		return res
	}

	gig, res := c.loadGig(ctx, gigID)
	if gig == nil {
		return res
	}

	// Expiry invalidates the action regardless of the status field.
	if gig.Expired(c.Now()) {
		return fail(http.StatusBadRequest, ExpiredOfferMessage)
	}

	if gig.StatusInternal != models.GigPendingWorkerAcceptance ||
		gig.WorkerUserId == nil || *gig.WorkerUserId != worker.Id {
		return fail(http.StatusNotFound, "gig not found or not offered to this worker")
	}

	if err := c.Store.AcceptOffer(ctx, gigID, worker.Id); err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to accept offer", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to accept offer")
	}

	return ok()
}

// DeclineOffer lets a worker decline an open-pool pending offer. A directed
// offer cannot be declined through this path; it is accepted or left to lapse.
// Declining releases the buyer's payment hold.
func (c *Controller) DeclineOffer(ctx context.Context, gigID, workerExternalID string) ActionResult {
	worker, res := c.resolveUser(ctx, workerExternalID)
	if worker == nil {
		return res
	}

	gig, res := c.loadGig(ctx, gigID)
	if gig == nil {
		return res
	}

	if gig.Expired(c.Now()) {
		return fail(http.StatusBadRequest, ExpiredOfferMessage)
	}

	if gig.StatusInternal != models.GigPendingWorkerAcceptance || gig.Directed() {
		return fail(http.StatusNotFound, "gig not found or not open for decline")
	}

	if err := c.Store.TransitionGig(ctx, gigID, models.GigPendingWorkerAcceptance, models.GigDeclinedByWorker); err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to decline offer", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to decline offer")
	}

	if err := c.Ledger.CancelRelatedPayments(ctx, gigID); err != nil {
		// The decline itself stands; the money side needs attention.
		c.Logger.Error("gig declined but payment cancellation failed",
			slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, err.Error())
	}

	return ok()
}

// UpdateOfferStatus is the generalized transition both buyer and worker
// clients call with accept, cancel, start or complete.
func (c *Controller) UpdateOfferStatus(ctx context.Context, gigID, actorExternalID string, role models.Role, action models.OfferAction) ActionResult {
	actor, res := c.resolveUser(ctx, actorExternalID)
	if actor == nil {
		return res
	}

	// Anything that is not an accept resolves to the role's cancellation
	// status. start and complete currently fall into that branch too; the
	// clients only send accept and cancel through this path today.
	// TODO: give start/complete their own mapping once product signs off on
	// the three-way transition.
	target := models.GigAccepted
	if action != models.ActionAccept {
		target = role.CancellationStatus()
	}

	var err error
	switch {
	case action == models.ActionAccept && role == models.RoleWorker:
		// Accepting as the worker also stamps the worker onto the gig.
		err = c.Store.AcceptOffer(ctx, gigID, actor.Id)
	case action != models.ActionAccept && role == models.RoleWorker:
		// Worker cancellation is a status-only update with no ownership filter.
		_, err = c.Store.SetGigStatusGuarded(ctx, gigID, target, nil)
	default:
		// Everything else is filtered by the actor's own column so one tenant
		// cannot mutate another's gig.
		_, err = c.Store.SetGigStatusGuarded(ctx, gigID, target, &storage.Owner{Role: role, UserID: actor.Id})
	}
	if err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to update offer status",
			slog.String("gig_id", gigID), slog.String("action", string(action)), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to update offer status")
	}

	if action != models.ActionAccept {
		// Cancellation always tries to release the hold, even when the status
		// write matched no row.
		if err := c.Ledger.CancelRelatedPayments(ctx, gigID); err != nil {
			c.Logger.Error("gig cancelled but payment cancellation failed",
				slog.String("gig_id", gigID), slog.String("error", err.Error()))
			return fail(http.StatusInternalServerError, err.Error())
		}
	}

	return ok()
}

// resolveUser maps an external identity to a user row, folding failures into
// an ActionResult. A nil user means the result should be returned as-is.
func (c *Controller) resolveUser(ctx context.Context, externalID string) (*models.User, ActionResult) {
	user, err := c.Store.GetUserByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fail(http.StatusNotFound, "user not found")
		}
		c.Logger.Error("failed to resolve user", slog.String("error", err.Error()))
		return nil, fail(http.StatusInternalServerError, "failed to resolve user")
	}
	return user, ActionResult{}
}

// loadGig fetches the gig, folding failures into an ActionResult.
func (c *Controller) loadGig(ctx context.Context, gigID string) (*models.Gig, ActionResult) {
	gig, err := c.Store.GetGig(ctx, gigID)
	if err != nil {
		if errors.Is(err, storage.ErrGigNotFound) {
			return nil, fail(http.StatusNotFound, "gig not found")
		}
		c.Logger.Error("failed to load gig", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return nil, fail(http.StatusInternalServerError, "failed to load gig")
	}
	return gig, ActionResult{}
}
