package storage

import (
	"context"

	"github.com/dlevine/gig-marketplace/pkg/models"
)

// Owner restricts a status write to rows whose buyer or worker column matches
// the actor, depending on role.
type Owner struct {
	Role   models.Role
	UserID string
}

// GigReader defines the interface for reading gig data.
type GigReader interface {
	// GetGig retrieves a gig by its ID. Absence is reported as ErrGigNotFound.
	GetGig(ctx context.Context, gigID string) (*models.Gig, error)
}

// GigWriter applies lifecycle transitions. Every write is a single conditional
// statement: AcceptOffer and TransitionGig key on the row's current status,
// SetGigStatusGuarded on the row not being in a terminal status.
type GigWriter interface {
	// CreateGig inserts a new gig row.
	CreateGig(ctx context.Context, gig *models.Gig) error

	// AcceptOffer moves a pending offer to ACCEPTED and re-stamps the assigned
	// worker. Zero rows affected is reported as ErrUpdateConflict.
	AcceptOffer(ctx context.Context, gigID, workerID string) error

	// TransitionGig sets the status to `to` only if the row currently holds
	// `from`. Zero rows affected is reported as ErrUpdateConflict.
	TransitionGig(ctx context.Context, gigID string, from, to models.GigStatus) error

	// SetGigStatusGuarded sets the status on any non-terminal row, optionally
	// filtered to the owner's column. It reports the number of rows affected
	// rather than treating zero as an error; some callers proceed regardless.
	SetGigStatusGuarded(ctx context.Context, gigID string, to models.GigStatus, owner *Owner) (int64, error)
}

// GigStore combines the reader and writer interfaces.
type GigStore interface {
	GigReader
	GigWriter
}
