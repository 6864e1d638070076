package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/processor"
	processor_mocks "github.com/dlevine/gig-marketplace/pkg/processor/mocks"
	"github.com/dlevine/gig-marketplace/pkg/storage"
	storage_mocks "github.com/dlevine/gig-marketplace/pkg/storage/mocks"
)

func newTestLedger(t *testing.T) (*Ledger, *storage_mocks.PaymentStore, *processor_mocks.PaymentProcessor) {
	mockPayments := storage_mocks.NewPaymentStore(t)
	mockProcessor := processor_mocks.NewPaymentProcessor(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	l := New(mockPayments, mockProcessor, logger, "usd", DefaultPlatformFeeBps)
	return l, mockPayments, mockProcessor
}

func pendingPayment(id, intentID string) models.Payment {
	p := models.Payment{
		Id:     id,
		GigId:  "g1",
		Status: models.PaymentPending,
	}
	if intentID != "" {
		p.PaymentIntentId = &intentID
	}
	return p
}

func TestPlaceHold(t *testing.T) {
	workerID := "u1"
	gig := &models.Gig{
		Id:              "g1",
		BuyerUserId:     "b1",
		WorkerUserId:    &workerID,
		TotalPriceCents: 10000,
	}

	t.Run("Success Records Pending Row With Fee Split", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockProcessor.On("CreateHold", mock.Anything, processor.HoldRequest{
			GigID:       "g1",
			AmountCents: 10000,
			Currency:    "usd",
			CardToken:   "tok_visa",
		}).Return(&processor.PaymentIntent{Id: "pi_1", Status: "pending"}, nil)

		var recorded *models.Payment
		mockPayments.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*models.Payment)
			}).Return(nil)

		payment, err := l.PlaceHold(context.Background(), gig, "tok_visa")

		assert.Nil(t, err)
		assert.Equal(t, recorded, payment)
		assert.Equal(t, "pi_1", *payment.PaymentIntentId)
		assert.Equal(t, "b1", payment.PayerUserId)
		assert.Equal(t, "u1", payment.ReceiverUserId)
		assert.Equal(t, int64(10000), payment.AmountGrossCents)
		assert.Equal(t, int64(1000), payment.AppFeeCents)
		assert.Equal(t, int64(9000), payment.AmountNetCents)
		assert.Equal(t, models.PaymentPending, payment.Status)
	})

	t.Run("Processor Failure Records Nothing", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockProcessor.On("CreateHold", mock.Anything, mock.AnythingOfType("processor.HoldRequest")).
			Return(nil, errors.New("card declined"))

		payment, err := l.PlaceHold(context.Background(), gig, "tok_visa")

		assert.Nil(t, payment)
		assert.ErrorContains(t, err, "card declined")
		mockPayments.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("Row Insert Failure Surfaces", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockProcessor.On("CreateHold", mock.Anything, mock.AnythingOfType("processor.HoldRequest")).
			Return(&processor.PaymentIntent{Id: "pi_1"}, nil)
		mockPayments.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).
			Return(errors.New("db down"))

		payment, err := l.PlaceHold(context.Background(), gig, "tok_visa")

		assert.Nil(t, payment)
		assert.ErrorContains(t, err, "g1")
	})
}

func TestCancelRelatedPayments(t *testing.T) {
	t.Run("No Payments", func(t *testing.T) {
		l, mockPayments, _ := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{}, nil)

		err := l.CancelRelatedPayments(context.Background(), "g1")

		assert.ErrorIs(t, err, storage.ErrNoPaymentsForGig)
		mockPayments.AssertNotCalled(t, "MarkPaymentsRefunded", mock.Anything, mock.Anything)
	})

	t.Run("All Cancellations Succeed", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("CancelIntent", mock.Anything, "pi_1").Return(nil).Once()
		mockProcessor.On("CancelIntent", mock.Anything, "pi_2").Return(nil).Once()
		mockPayments.On("MarkPaymentsRefunded", mock.Anything, []string{"p1", "p2"}).Return(nil).Once()

		err := l.CancelRelatedPayments(context.Background(), "g1")

		assert.Nil(t, err)
	})

	t.Run("One Cancellation Fails Touches No Rows", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("CancelIntent", mock.Anything, "pi_1").Return(nil).Once()
		mockProcessor.On("CancelIntent", mock.Anything, "pi_2").Return(errors.New("already captured")).Once()

		err := l.CancelRelatedPayments(context.Background(), "g1")

		assert.ErrorContains(t, err, "g1")
		mockPayments.AssertNotCalled(t, "MarkPaymentsRefunded", mock.Anything, mock.Anything)
	})

	t.Run("Rows Without An Intent Skip The Processor", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", ""),
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("CancelIntent", mock.Anything, "pi_2").Return(nil).Once()
		mockPayments.On("MarkPaymentsRefunded", mock.Anything, []string{"p1", "p2"}).Return(nil).Once()

		err := l.CancelRelatedPayments(context.Background(), "g1")

		assert.Nil(t, err)
	})
}

func TestSettleGigPayments(t *testing.T) {
	t.Run("Each Row Completed As Its Capture Lands", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_1").Return(&processor.PaymentIntent{Id: "pi_1"}, nil).Once()
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_2").Return(&processor.PaymentIntent{Id: "pi_2"}, nil).Once()
		mockProcessor.On("CaptureIntent", mock.Anything, "pi_1").Return(&processor.PaymentIntent{Id: "pi_1", Captured: true}, nil).Once()
		mockProcessor.On("CaptureIntent", mock.Anything, "pi_2").Return(&processor.PaymentIntent{Id: "pi_2", Captured: true}, nil).Once()
		mockPayments.On("MarkPaymentCompleted", mock.Anything, "p1").Return(nil).Once()
		mockPayments.On("MarkPaymentCompleted", mock.Anything, "p2").Return(nil).Once()

		err := l.SettleGigPayments(context.Background(), "g1")

		assert.Nil(t, err)
	})

	t.Run("Already Captured Intent Is Not Captured Again", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
		}, nil)
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_1").Return(&processor.PaymentIntent{Id: "pi_1", Captured: true}, nil).Once()
		mockPayments.On("MarkPaymentCompleted", mock.Anything, "p1").Return(nil).Once()

		err := l.SettleGigPayments(context.Background(), "g1")

		assert.Nil(t, err)
		mockProcessor.AssertNotCalled(t, "CaptureIntent", mock.Anything, mock.Anything)
	})

	t.Run("Retrieve Failure Stops That Row", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
		}, nil)
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_1").Return(nil, errors.New("not found")).Once()

		err := l.SettleGigPayments(context.Background(), "g1")

		assert.ErrorContains(t, err, "pi_1")
		mockPayments.AssertNotCalled(t, "MarkPaymentCompleted", mock.Anything, mock.Anything)
	})

	t.Run("Refunded Rows Are Skipped", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		refunded := pendingPayment("p1", "pi_1")
		refunded.Status = models.PaymentRefunded
		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			refunded,
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_2").Return(&processor.PaymentIntent{Id: "pi_2"}, nil).Once()
		mockProcessor.On("CaptureIntent", mock.Anything, "pi_2").Return(&processor.PaymentIntent{Id: "pi_2", Captured: true}, nil).Once()
		mockPayments.On("MarkPaymentCompleted", mock.Anything, "p2").Return(nil).Once()

		err := l.SettleGigPayments(context.Background(), "g1")

		assert.Nil(t, err)
		mockProcessor.AssertNotCalled(t, "RetrieveIntent", mock.Anything, "pi_1")
		mockProcessor.AssertNotCalled(t, "CaptureIntent", mock.Anything, "pi_1")
	})

	t.Run("Capture Failure Leaves That Row Pending", func(t *testing.T) {
		l, mockPayments, mockProcessor := newTestLedger(t)

		mockPayments.On("ListPaymentsByGig", mock.Anything, "g1").Return([]models.Payment{
			pendingPayment("p1", "pi_1"),
			pendingPayment("p2", "pi_2"),
		}, nil)
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_1").Return(&processor.PaymentIntent{Id: "pi_1"}, nil).Once()
		mockProcessor.On("RetrieveIntent", mock.Anything, "pi_2").Return(&processor.PaymentIntent{Id: "pi_2"}, nil).Once()
		mockProcessor.On("CaptureIntent", mock.Anything, "pi_1").Return(&processor.PaymentIntent{Id: "pi_1", Captured: true}, nil).Once()
		mockProcessor.On("CaptureIntent", mock.Anything, "pi_2").Return(nil, errors.New("insufficient funds")).Once()
		mockPayments.On("MarkPaymentCompleted", mock.Anything, "p1").Return(nil).Once()

		err := l.SettleGigPayments(context.Background(), "g1")

		assert.ErrorContains(t, err, "g1")
		mockPayments.AssertNotCalled(t, "MarkPaymentCompleted", mock.Anything, "p2")
	})
}
