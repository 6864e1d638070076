package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// CreateGigRequest describes a buyer-initiated booking. A non-empty
// WorkerExternalId makes the offer directed at that worker; empty leaves it in
// the open pool.
type CreateGigRequest struct {
	Title            string
	BuyerExternalId  string
	WorkerExternalId string
	StartAt          time.Time
	EndAt            time.Time
	ExpiresAt        *time.Time
	HourlyRateCents  int64
	TotalPriceCents  int64
	Location         *models.Location
	CardToken        string
}

// CreateGigOffer books a new gig in PENDING_WORKER_ACCEPTANCE and places the
// payment hold for its total price.
func (c *Controller) CreateGigOffer(ctx context.Context, req CreateGigRequest) (*models.Gig, ActionResult) {
	buyer, res := c.resolveUser(ctx, req.BuyerExternalId)
	if buyer == nil {
		return nil, res
	}

	var workerID *string
	if req.WorkerExternalId != "" {
		worker, err := c.Store.GetUserByExternalID(ctx, req.WorkerExternalId)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				return nil, fail(http.StatusNotFound, "worker not found")
			}
			c.Logger.Error("failed to resolve worker", slog.String("error", err.Error()))
			return nil, fail(http.StatusInternalServerError, "failed to resolve worker")
		}
		workerID = &worker.Id
	}

	if req.TotalPriceCents <= 0 || !req.EndAt.After(req.StartAt) {
		return nil, fail(http.StatusBadRequest, "invalid gig terms")
	}

	now := c.Now()
	gig := &models.Gig{
		Id:              uuid.NewString(),
		Title:           req.Title,
		BuyerUserId:     buyer.Id,
		WorkerUserId:    workerID,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		ExpiresAt:       req.ExpiresAt,
		HourlyRateCents: req.HourlyRateCents,
		TotalPriceCents: req.TotalPriceCents,
		Location:        req.Location,
		StatusInternal:  models.GigPendingWorkerAcceptance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.Store.CreateGig(ctx, gig); err != nil {
		c.Logger.Error("failed to create gig", slog.String("error", err.Error()))
		return nil, fail(http.StatusInternalServerError, "failed to create gig")
	}

	if _, err := c.Ledger.PlaceHold(ctx, gig, req.CardToken); err != nil {
		// The gig row exists without a hold; it cannot be accepted into paid
		// work, so surface the failure to the buyer.
		c.Logger.Error("gig created but hold failed",
			slog.String("gig_id", gig.Id), slog.String("error", err.Error()))
		return nil, fail(http.StatusInternalServerError, err.Error())
	}

	return gig, ok()
}
