package storage

import (
	"context"

	"github.com/dlevine/gig-marketplace/pkg/models"
)

// UserReader resolves external-facing identities to internal user rows.
type UserReader interface {
	// GetUserByExternalID maps an auth-provider identifier to the user row it
	// belongs to. Absence is reported as ErrUserNotFound.
	GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error)
}
