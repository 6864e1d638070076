package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

var paymentColumnNames = []string{
	"id", "gig_id", "payment_intent_id", "payer_user_id", "receiver_user_id",
	"amount_gross_cents", "app_fee_cents", "amount_net_cents", "status",
	"created_at", "updated_at",
}

func TestListPaymentsByGig(t *testing.T) {
	now := time.Now()

	t.Run("Success With Nullable Intent", func(t *testing.T) {
		store, mock := newMockStore(t)

		rows := sqlmock.NewRows(paymentColumnNames).
			AddRow("p1", "g1", "pi_1", "b1", "u1", int64(5000), int64(500), int64(4500), "PENDING", now, now).
			AddRow("p2", "g1", nil, "b1", "u1", int64(1000), int64(100), int64(900), "PENDING", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM payments`).WithArgs("g1").WillReturnRows(rows)

		payments, err := store.ListPaymentsByGig(context.Background(), "g1")

		assert.Nil(t, err)
		assert.Len(t, payments, 2)
		assert.Equal(t, "pi_1", *payments[0].PaymentIntentId)
		assert.Nil(t, payments[1].PaymentIntentId)
		assert.Equal(t, models.PaymentPending, payments[0].Status)
	})

	t.Run("No Rows", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT (.+) FROM payments`).WithArgs("g1").
			WillReturnRows(sqlmock.NewRows(paymentColumnNames))

		payments, err := store.ListPaymentsByGig(context.Background(), "g1")

		assert.Nil(t, err)
		assert.Empty(t, payments)
	})

	t.Run("Query Failure", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT (.+) FROM payments`).WithArgs("g1").
			WillReturnError(errors.New("connection reset"))

		payments, err := store.ListPaymentsByGig(context.Background(), "g1")

		assert.Nil(t, payments)
		assert.ErrorContains(t, err, "g1")
	})
}

func TestCreatePayment(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	intentID := "pi_1"
	payment := &models.Payment{
		Id:               "p1",
		GigId:            "g1",
		PaymentIntentId:  &intentID,
		PayerUserId:      "b1",
		ReceiverUserId:   "u1",
		AmountGrossCents: 5000,
		AppFeeCents:      500,
		AmountNetCents:   4500,
		Status:           models.PaymentPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs("p1", "g1", "pi_1", "b1", "u1", int64(5000), int64(500), int64(4500), "PENDING", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.CreatePayment(context.Background(), payment)

	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentsRefunded(t *testing.T) {
	t.Run("Batch Update Guards On Pending", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(`(?s)UPDATE payments.+WHERE id = ANY\(\$2\) AND status = \$3`).
			WithArgs("REFUNDED", sqlmock.AnyArg(), "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := store.MarkPaymentsRefunded(context.Background(), []string{"p1", "p2"})

		assert.Nil(t, err)
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("Exec Failure", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(`UPDATE payments`).
			WithArgs("REFUNDED", sqlmock.AnyArg(), "PENDING").
			WillReturnError(errors.New("deadlock detected"))

		err := store.MarkPaymentsRefunded(context.Background(), []string{"p1"})

		assert.ErrorContains(t, err, "deadlock")
	})
}

func TestMarkPaymentCompleted(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(`UPDATE payments`).
			WithArgs("COMPLETED", "p1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.MarkPaymentCompleted(context.Background(), "p1")

		assert.Nil(t, err)
	})

	t.Run("Already Left Pending", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectExec(`UPDATE payments`).
			WithArgs("COMPLETED", "p1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.MarkPaymentCompleted(context.Background(), "p1")

		assert.ErrorIs(t, err, storage.ErrUpdateConflict)
	})
}
