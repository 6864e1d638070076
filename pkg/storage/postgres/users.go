package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dlevine/gig-marketplace/pkg/models"
	"github.com/dlevine/gig-marketplace/pkg/storage"
)

// GetUserByExternalID maps an auth-provider identifier to its internal user row.
func (s *Store) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT id, external_id, display_name, created_at FROM users WHERE external_id = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, externalID).Scan(
		&user.Id,
		&user.ExternalId,
		&user.DisplayName,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by external id: %w", err)
	}

	return &user, nil
}
