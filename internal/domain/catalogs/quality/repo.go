package quality

import (
	"context"

	"milldesk/internal/core/id"
)

// Repository defines the interface for Quality persistence.
// Qualities are always accessed through their owning company.
type Repository interface {
	// GetByID retrieves a quality by ID.
	GetByID(ctx context.Context, id id.ID) (*Quality, error)

	// ListByCompany retrieves all qualities of one company, ordered by name.
	ListByCompany(ctx context.Context, companyID id.ID) ([]*Quality, error)

	// ListByCompanies retrieves qualities for a set of companies in one query.
	ListByCompanies(ctx context.Context, companyIDs []id.ID) (map[id.ID][]*Quality, error)

	// ReplaceForCompany atomically replaces the company's quality set:
	// existing rows are removed and the given set is inserted.
	ReplaceForCompany(ctx context.Context, companyID id.ID, qualities []*Quality) error

	// DeleteByCompany removes all qualities of a company.
	DeleteByCompany(ctx context.Context, companyID id.ID) error

	// BelongsToCompany reports whether the quality exists and is owned
	// by the given company.
	BelongsToCompany(ctx context.Context, qualityID, companyID id.ID) (bool, error)

	// CountDistinctNames counts distinct quality names across all
	// companies of a user (for dashboard stats).
	CountDistinctNames(ctx context.Context, userID id.ID) (int64, error)
}
