// Package company provides the Company catalog. Companies are client
// textile mills for which production work is tracked.
package company

import (
	"context"
	"strings"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/quality"
)

// Company represents a client mill owned by a user. Its qualities are
// owned by the company and replaced as a whole set on edit.
type Company struct {
	entity.Catalog

	// UserID is the owning user. All reads are scoped by it.
	UserID id.ID `db:"user_id" json:"userId"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the mill address
	Address *string `db:"address" json:"address,omitempty"`

	// Qualities is the child collection, loaded separately from its own table.
	Qualities []*quality.Quality `db:"-" json:"qualities"`
}

// NewCompany creates a new Company with required fields.
func NewCompany(code, name string, userID id.ID) *Company {
	return &Company{
		Catalog: entity.NewCatalog(code, name),
		UserID:  userID,
	}
}

// Validate implements entity.Validatable. It validates the company
// itself and every quality in the child collection.
func (c *Company) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(c.UserID) {
		return apperror.NewValidation("company owner is required").
			WithDetail("field", "userId")
	}

	seen := make(map[string]struct{}, len(c.Qualities))
	for _, q := range c.Qualities {
		if err := q.Validate(ctx); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(q.Name))
		if _, dup := seen[key]; dup {
			return apperror.NewValidation("duplicate quality name").
				WithDetail("field", "qualities").
				WithDetail("name", q.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// QualityByID returns the quality with the given ID, or nil.
func (c *Company) QualityByID(qualityID id.ID) *quality.Quality {
	for _, q := range c.Qualities {
		if q.ID == qualityID {
			return q
		}
	}
	return nil
}
