package worklog

import (
	"context"
	"time"

	"milldesk/internal/core/id"
)

// Filter narrows work log listings. Zero values mean "no restriction"
// except UserID, which is always required for ownership scoping.
type Filter struct {
	UserID    id.ID
	CompanyID id.ID
	QualityID id.ID

	// From and To bound the entry date, half-open: [From, To).
	From time.Time
	To   time.Time

	Limit  int
	Offset int
}

// Repository defines the interface for work log persistence.
// Reads resolve the referenced quality (name and both rates) and the
// company name alongside each entry.
type Repository interface {
	// Create inserts a new entry.
	Create(ctx context.Context, entry *Entry) error

	// GetByID retrieves an entry with its resolved quality.
	GetByID(ctx context.Context, id id.ID) (*Entry, error)

	// List retrieves entries matching the filter, ordered by date
	// ascending then by creation order for equal dates.
	List(ctx context.Context, filter Filter) ([]*Entry, error)

	// Count counts entries matching the filter.
	Count(ctx context.Context, filter Filter) (int64, error)

	// Delete removes one entry permanently.
	Delete(ctx context.Context, id id.ID) error

	// DeleteByCompanyAndRange removes all entries of a company whose
	// date falls in [from, to).
	DeleteByCompanyAndRange(ctx context.Context, companyID id.ID, from, to time.Time) (int64, error)

	// DeleteByCompany removes all entries of a company.
	DeleteByCompany(ctx context.Context, companyID id.ID) (int64, error)
}
