package company

import (
	"context"

	"milldesk/internal/core/id"
	"milldesk/internal/domain"
)

// Repository defines the interface for Company persistence.
// The qualities child collection is persisted through quality.Repository.
type Repository interface {
	domain.CatalogRepository[*Company]

	// CountByUser counts non-deleted companies owned by a user.
	CountByUser(ctx context.Context, userID id.ID) (int64, error)
}
