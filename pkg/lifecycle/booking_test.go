package lifecycle

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

func bookingRequest() CreateGigRequest {
	return CreateGigRequest{
		Title:           "Assemble a bookshelf",
		BuyerExternalId: "ext-b1",
		StartAt:         testNow.Add(24 * time.Hour),
		EndAt:           testNow.Add(26 * time.Hour),
		HourlyRateCents: 2500,
		TotalPriceCents: 5000,
		CardToken:       "tok_visa",
	}
}

func TestCreateGigOffer(t *testing.T) {
	buyer := &models.User{Id: "b1", ExternalId: "ext-b1"}
	worker := &models.User{Id: "u1", ExternalId: "ext-u1"}

	t.Run("Open Pool Offer", func(t *testing.T) {
		c, mockStore, mockLedger := newTestController(t)

		mockStore.On("GetUserByExternalID", mock.Anything, "ext-b1").Return(buyer, nil)
		mockStore.On("CreateGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil)
		mockLedger.On("PlaceHold", mock.Anything, mock.AnythingOfType("*models.Gig"), "tok_visa").
			Return(&models.Payment{Id: "p1"}, nil).Once()

		gig, res := c.CreateGigOffer(context.Background(), bookingRequest())

		assert.True(t, res.Success)
		assert.NotNil(t, gig)
		assert.Equal(t, models.GigPendingWorkerAcceptance, gig.StatusInternal)
		assert.Equal(t, "b1", gig.BuyerUserId)
		assert.Nil(t, gig.WorkerUserId)
	})

	t.Run("Directed Offer Resolves Worker", func(t *testing.T) {
		c, mockStore, mockLedger := newTestController(t)

		req := bookingRequest()
		req.WorkerExternalId = "ext-u1"
		mockStore.On("GetUserByExternalID", mock.Anything, "ext-b1").Return(buyer, nil)
		mockStore.On("GetUserByExternalID", mock.Anything, "ext-u1").Return(worker, nil)
		mockStore.On("CreateGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil)
		mockLedger.On("PlaceHold", mock.Anything, mock.AnythingOfType("*models.Gig"), "tok_visa").
			Return(&models.Payment{Id: "p1"}, nil).Once()

		gig, res := c.CreateGigOffer(context.Background(), req)

		assert.True(t, res.Success)
		assert.Equal(t, "u1", *gig.WorkerUserId)
	})

	t.Run("Unknown Worker", func(t *testing.T) {
		c, mockStore, _ := newTestController(t)

		req := bookingRequest()
		req.WorkerExternalId = "ext-nobody"
		mockStore.On("GetUserByExternalID", mock.Anything, "ext-b1").Return(buyer, nil)
		mockStore.On("GetUserByExternalID", mock.Anything, "ext-nobody").Return(nil, storage.ErrUserNotFound)

		gig, res := c.CreateGigOffer(context.Background(), req)

		assert.Nil(t, gig)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Invalid Terms", func(t *testing.T) {
		c, mockStore, _ := newTestController(t)

		req := bookingRequest()
		req.TotalPriceCents = 0
		mockStore.On("GetUserByExternalID", mock.Anything, "ext-b1").Return(buyer, nil)

		gig, res := c.CreateGigOffer(context.Background(), req)

		assert.Nil(t, gig)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		mockStore.AssertNotCalled(t, "CreateGig", mock.Anything, mock.Anything)
	})

	t.Run("Hold Failure Surfaces", func(t *testing.T) {
		c, mockStore, mockLedger := newTestController(t)

		mockStore.On("GetUserByExternalID", mock.Anything, "ext-b1").Return(buyer, nil)
		mockStore.On("CreateGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil)
		mockLedger.On("PlaceHold", mock.Anything, mock.AnythingOfType("*models.Gig"), "tok_visa").
			Return(nil, errors.New("card declined")).Once()

		gig, res := c.CreateGigOffer(context.Background(), bookingRequest())

		assert.Nil(t, gig)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Contains(t, res.Error, "card declined")
	})
}
