package mapping

import (
	"github.com/dlevine/gig-marketplace/pkg/api"
	"github.com/dlevine/gig-marketplace/pkg/lifecycle"
	"github.com/dlevine/gig-marketplace/pkg/models"
)

// ToApiGig converts a domain Gig model to an API Gig model.
func ToApiGig(gig *models.Gig) *api.Gig {
	return &api.Gig{
		Id:              gig.Id,
		Title:           gig.Title,
		BuyerUserId:     gig.BuyerUserId,
		WorkerUserId:    gig.WorkerUserId,
		StartAt:         gig.StartAt,
		EndAt:           gig.EndAt,
		ExpiresAt:       gig.ExpiresAt,
		HourlyRateCents: gig.HourlyRateCents,
		TotalPriceCents: gig.TotalPriceCents,
		TipCents:        gig.TipCents,
		Location:        ToApiLocation(gig.Location),
		Status:          string(gig.StatusInternal),
		CreatedAt:       gig.CreatedAt,
		UpdatedAt:       gig.UpdatedAt,
	}
}

// ToApiLocation converts the domain location variant to its API shape.
func ToApiLocation(loc *models.Location) *api.Location {
	if loc == nil {
		return nil
	}
	return &api.Location{
		Kind:    string(loc.Kind),
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Address: loc.Address,
		Raw:     loc.Raw,
	}
}

// ToApiPayment converts a domain Payment model to an API Payment model.
func ToApiPayment(payment *models.Payment) *api.Payment {
	return &api.Payment{
		Id:               payment.Id,
		GigId:            payment.GigId,
		PaymentIntentId:  payment.PaymentIntentId,
		PayerUserId:      payment.PayerUserId,
		ReceiverUserId:   payment.ReceiverUserId,
		AmountGrossCents: payment.AmountGrossCents,
		AppFeeCents:      payment.AppFeeCents,
		AmountNetCents:   payment.AmountNetCents,
		Status:           string(payment.Status),
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}

// ToDomainNewGig converts an API NewGig request to a controller request.
// The raw location payload is parsed here, at the boundary.
func ToDomainNewGig(newGig *api.NewGig) (lifecycle.CreateGigRequest, error) {
	loc, err := models.ParseLocation(newGig.Location)
	if err != nil {
		return lifecycle.CreateGigRequest{}, err
	}
	return lifecycle.CreateGigRequest{
		Title:            newGig.Title,
		BuyerExternalId:  newGig.BuyerExternalId,
		WorkerExternalId: newGig.WorkerExternalId,
		StartAt:          newGig.StartAt,
		EndAt:            newGig.EndAt,
		ExpiresAt:        newGig.ExpiresAt,
		HourlyRateCents:  newGig.HourlyRateCents,
		TotalPriceCents:  newGig.TotalPriceCents,
		Location:         loc,
		CardToken:        newGig.CardToken,
	}, nil
}

// ToApiActionResponse converts a controller result to the response body.
func ToApiActionResponse(res lifecycle.ActionResult) *api.ActionResponse {
	return &api.ActionResponse{Success: res.Success, Error: res.Error}
}
