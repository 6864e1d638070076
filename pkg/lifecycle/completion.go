package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// StartGig moves an accepted gig into progress. Only the assigned worker may
// start it.
func (c *Controller) StartGig(ctx context.Context, gigID, workerExternalID string) ActionResult {
	worker, res := c.resolveUser(ctx, workerExternalID)
	if worker == nil {
		return res
	}

	gig, res := c.loadGig(ctx, gigID)
	if gig == nil {
		return res
	}

	if gig.StatusInternal != models.GigAccepted || gig.WorkerUserId == nil || *gig.WorkerUserId != worker.Id {
		return fail(http.StatusNotFound, "gig not found or not startable by this worker")
	}

	if err := c.Store.TransitionGig(ctx, gigID, models.GigAccepted, models.GigInProgress); err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to start gig", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to start gig")
	}

	return ok()
}

// RequestCompletion records that one party considers the work done. The gig
// then waits on the other party's confirmation.
func (c *Controller) RequestCompletion(ctx context.Context, gigID, actorExternalID string, role models.Role) ActionResult {
	actor, res := c.resolveUser(ctx, actorExternalID)
	if actor == nil {
		return res
	}

	gig, res := c.loadGig(ctx, gigID)
	if gig == nil {
		return res
	}

	if gig.StatusInternal != models.GigInProgress || !c.isParty(gig, role, actor.Id) {
		return fail(http.StatusNotFound, "gig not found or not completable by this user")
	}

	// The requesting side flips the gig into the state that waits on the
	// opposite party.
	target := models.GigPendingCompletionBuyer
	if role == models.RoleBuyer {
		target = models.GigPendingCompletionWorker
	}

	if err := c.Store.TransitionGig(ctx, gigID, models.GigInProgress, target); err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to request completion", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to request completion")
	}

	return ok()
}

// ConfirmCompletion is the second party's sign-off. It walks the gig through
// COMPLETED into AWAITING_PAYMENT, settles the held payments, and marks the
// gig PAID once every capture lands. If settlement fails the gig stays in
// AWAITING_PAYMENT; calling ConfirmCompletion again on such a gig skips the
// confirmation transitions and retries settlement.
func (c *Controller) ConfirmCompletion(ctx context.Context, gigID, actorExternalID string, role models.Role) ActionResult {
	actor, res := c.resolveUser(ctx, actorExternalID)
	if actor == nil {
		return res
	}

	gig, res := c.loadGig(ctx, gigID)
	if gig == nil {
		return res
	}

	// A gig stuck in AWAITING_PAYMENT means a prior settlement attempt failed
	// after confirmation; either party can retry the capture.
	if gig.StatusInternal == models.GigAwaitingPayment {
		if !c.isParty(gig, role, actor.Id) {
			return fail(http.StatusNotFound, "gig not found or not awaiting confirmation from this user")
		}
		return c.settleAndMarkPaid(ctx, gigID)
	}

	// Confirmation is only valid from the party the gig is waiting on.
	waitingOn := models.GigPendingCompletionWorker
	if role == models.RoleBuyer {
		waitingOn = models.GigPendingCompletionBuyer
	}
	if gig.StatusInternal != waitingOn || !c.isParty(gig, role, actor.Id) {
		return fail(http.StatusNotFound, "gig not found or not awaiting confirmation from this user")
	}

	if err := c.Store.TransitionGig(ctx, gigID, waitingOn, models.GigCompleted); err != nil {
		if errors.Is(err, storage.ErrUpdateConflict) {
			return fail(http.StatusInternalServerError, "gig could not be updated")
		}
		c.Logger.Error("failed to confirm completion", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to confirm completion")
	}

	if err := c.Store.TransitionGig(ctx, gigID, models.GigCompleted, models.GigAwaitingPayment); err != nil {
		c.Logger.Error("failed to queue gig for payment", slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "failed to queue gig for payment")
	}

	return c.settleAndMarkPaid(ctx, gigID)
}

// settleAndMarkPaid captures the held payments and moves the gig from
// AWAITING_PAYMENT to PAID. On settlement failure the gig is left in
// AWAITING_PAYMENT for a later retry.
func (c *Controller) settleAndMarkPaid(ctx context.Context, gigID string) ActionResult {
	if err := c.Ledger.SettleGigPayments(ctx, gigID); err != nil {
		c.Logger.Error("gig completed but settlement failed",
			slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, err.Error())
	}

	if err := c.Store.TransitionGig(ctx, gigID, models.GigAwaitingPayment, models.GigPaid); err != nil {
		c.Logger.Error("payments settled but gig not marked paid",
			slog.String("gig_id", gigID), slog.String("error", err.Error()))
		return fail(http.StatusInternalServerError, "payments settled but gig not marked paid")
	}

	return ok()
}

// isParty reports whether the actor occupies the given role on the gig.
func (c *Controller) isParty(gig *models.Gig, role models.Role, userID string) bool {
	if role == models.RoleBuyer {
		return gig.BuyerUserId == userID
	}
	return gig.WorkerUserId != nil && *gig.WorkerUserId == userID
}
