package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// ListPaymentsByGig retrieves every payment row referencing the gig.
func (s *Store) ListPaymentsByGig(ctx context.Context, gigID string) ([]models.Payment, error) {
	query := `
	SELECT id, gig_id, payment_intent_id, payer_user_id, receiver_user_id,
		amount_gross_cents, app_fee_cents, amount_net_cents, status, created_at, updated_at
	FROM payments
	WHERE gig_id = $1
	ORDER BY created_at
	`

	rows, err := s.DB.QueryContext(ctx, query, gigID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for gig %s: %w", gigID, err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var intentID sql.NullString
		if err := rows.Scan(
			&p.Id,
			&p.GigId,
			&intentID,
			&p.PayerUserId,
			&p.ReceiverUserId,
			&p.AmountGrossCents,
			&p.AppFeeCents,
			&p.AmountNetCents,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment for gig %s: %w", gigID, err)
		}
		if intentID.Valid {
			p.PaymentIntentId = &intentID.String
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments for gig %s: %w", gigID, err)
	}

	return payments, nil
}

// CreatePayment inserts a new payment row.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
	INSERT INTO payments (id, gig_id, payment_intent_id, payer_user_id, receiver_user_id,
		amount_gross_cents, app_fee_cents, amount_net_cents, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var intentID any
	if payment.PaymentIntentId != nil {
		intentID = *payment.PaymentIntentId
	}

	_, err := s.DB.ExecContext(ctx, query,
		payment.Id,
		payment.GigId,
		intentID,
		payment.PayerUserId,
		payment.ReceiverUserId,
		payment.AmountGrossCents,
		payment.AppFeeCents,
		payment.AmountNetCents,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", payment.Id, err)
	}

	return nil
}

// MarkPaymentsRefunded batch-moves the given PENDING rows to REFUNDED.
// The status guard keeps the forward-only invariant even if a row was settled
// between the read and this write.
func (s *Store) MarkPaymentsRefunded(ctx context.Context, paymentIDs []string) error {
	query := `
	UPDATE payments
	SET status = $1, updated_at = NOW()
	WHERE id = ANY($2) AND status = $3
	`

	_, err := s.DB.ExecContext(ctx, query, models.PaymentRefunded, pq.Array(paymentIDs), models.PaymentPending)
	if err != nil {
		return fmt.Errorf("failed to mark payments refunded: %w", err)
	}

	return nil
}

// MarkPaymentCompleted moves a single PENDING row to COMPLETED.
func (s *Store) MarkPaymentCompleted(ctx context.Context, paymentID string) error {
	query := `
	UPDATE payments
	SET status = $1, updated_at = NOW()
	WHERE id = $2 AND status = $3
	`

	result, err := s.DB.ExecContext(ctx, query, models.PaymentCompleted, paymentID, models.PaymentPending)
	if err != nil {
		return fmt.Errorf("failed to mark payment %s completed: %w", paymentID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected completing payment %s: %w", paymentID, err)
	}
	if rows == 0 {
		return storage.ErrUpdateConflict
	}

	return nil
}
