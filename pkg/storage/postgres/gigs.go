package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

const gigColumns = `id, title, buyer_user_id, worker_user_id, start_at, end_at, expires_at,
	hourly_rate_cents, total_price_cents, tip_cents, location, status_internal, created_at, updated_at`

// GetGig retrieves a gig row by its ID.
func (s *Store) GetGig(ctx context.Context, gigID string) (*models.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`

	var gig models.Gig
	var workerID sql.NullString
	var expiresAt sql.NullTime
	var location []byte

	err := s.DB.QueryRowContext(ctx, query, gigID).Scan(
		&gig.Id,
		&gig.Title,
		&gig.BuyerUserId,
		&workerID,
		&gig.StartAt,
		&gig.EndAt,
		&expiresAt,
		&gig.HourlyRateCents,
		&gig.TotalPriceCents,
		&gig.TipCents,
		&location,
		&gig.StatusInternal,
		&gig.CreatedAt,
		&gig.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to get gig %s: %w", gigID, err)
	}

	if workerID.Valid {
		gig.WorkerUserId = &workerID.String
	}
	if expiresAt.Valid {
		gig.ExpiresAt = &expiresAt.Time
	}

	// Location JSON is normalized here, once, so nothing downstream sniffs it.
	loc, err := models.ParseLocation(location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location for gig %s: %w", gigID, err)
	}
	gig.Location = loc

	return &gig, nil
}

// CreateGig inserts a new gig row.
func (s *Store) CreateGig(ctx context.Context, gig *models.Gig) error {
	query := `
	INSERT INTO gigs (` + gigColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	var workerID any
	if gig.WorkerUserId != nil {
		workerID = *gig.WorkerUserId
	}
	var expiresAt any
	if gig.ExpiresAt != nil {
		expiresAt = *gig.ExpiresAt
	}
	location, err := models.EncodeLocation(gig.Location)
	if err != nil {
		return fmt.Errorf("failed to encode location for gig %s: %w", gig.Id, err)
	}

	_, err = s.DB.ExecContext(ctx, query,
		gig.Id,
		gig.Title,
		gig.BuyerUserId,
		workerID,
		gig.StartAt,
		gig.EndAt,
		expiresAt,
		gig.HourlyRateCents,
		gig.TotalPriceCents,
		gig.TipCents,
		location,
		gig.StatusInternal,
		gig.CreatedAt,
		gig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gig %s: %w", gig.Id, err)
	}

	return nil
}

// AcceptOffer moves a pending offer to ACCEPTED and re-stamps the assigned worker.
func (s *Store) AcceptOffer(ctx context.Context, gigID, workerID string) error {
	query := `
	UPDATE gigs
	SET status_internal = $1, worker_user_id = $2, updated_at = NOW()
	WHERE id = $3 AND status_internal = $4
	`

	result, err := s.DB.ExecContext(ctx, query, models.GigAccepted, workerID, gigID, models.GigPendingWorkerAcceptance)
	if err != nil {
		return fmt.Errorf("failed to accept gig %s: %w", gigID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected accepting gig %s: %w", gigID, err)
	}
	if rows == 0 {
		return storage.ErrUpdateConflict
	}

	return nil
}

// TransitionGig sets the status to `to` only if the row currently holds `from`.
func (s *Store) TransitionGig(ctx context.Context, gigID string, from, to models.GigStatus) error {
	query := `
	UPDATE gigs
	SET status_internal = $1, updated_at = NOW()
	WHERE id = $2 AND status_internal = $3
	`

	result, err := s.DB.ExecContext(ctx, query, to, gigID, from)
	if err != nil {
		return fmt.Errorf("failed to transition gig %s to %s: %w", gigID, to, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected transitioning gig %s: %w", gigID, err)
	}
	if rows == 0 {
		return storage.ErrUpdateConflict
	}

	return nil
}

// ownerColumn selects which foreign-key column must match the actor for a
// role-filtered update. This mapping is the only role-generic piece of the
// workflow; keep it a plain switch.
func ownerColumn(role models.Role) string {
	if role == models.RoleBuyer {
		return "buyer_user_id"
	}
	return "worker_user_id"
}

// SetGigStatusGuarded sets the status on a non-terminal row, optionally
// restricted to the owner's column, and reports the rows affected.
func (s *Store) SetGigStatusGuarded(ctx context.Context, gigID string, to models.GigStatus, owner *storage.Owner) (int64, error) {
	query := `
	UPDATE gigs
	SET status_internal = $1, updated_at = NOW()
	WHERE id = $2 AND NOT (status_internal = ANY($3))
	`
	args := []any{to, gigID, pq.Array(terminalStatusStrings())}

	if owner != nil {
		query += fmt.Sprintf(" AND %s = $4", ownerColumn(owner.Role))
		args = append(args, owner.UserID)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to set status %s on gig %s: %w", to, gigID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected updating gig %s: %w", gigID, err)
	}

	return rows, nil
}

func terminalStatusStrings() []string {
	out := make([]string, len(models.TerminalGigStatuses))
	for i, s := range models.TerminalGigStatuses {
		out[i] = string(s)
	}
	return out
}
