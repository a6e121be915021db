// Package quality provides the Quality catalog: fabric types produced
// for a company, each with a payable rate (paid to workers) and a
// receivable rate (billed to the company).
package quality

import (
	"context"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
	"milldesk/internal/core/types"
)

// Quality represents a named fabric type belonging to one company.
type Quality struct {
	entity.BaseRecord

	// CompanyID is the owning company. A quality belongs to exactly one company.
	CompanyID id.ID `db:"company_id" json:"companyId"`

	// Name of the fabric type (e.g., "Cotton 40s Plain")
	Name string `db:"name" json:"name"`

	// PayableRate is the per-entry amount paid to workers, 2 fractional digits.
	PayableRate string `db:"payable_rate" json:"payableRate"`

	// ReceivableRate is the per-entry amount billed to the company, 2 fractional digits.
	ReceivableRate string `db:"receivable_rate" json:"receivableRate"`
}

// New creates a Quality with normalized rates.
func New(companyID id.ID, name, payableRate, receivableRate string) *Quality {
	return &Quality{
		BaseRecord:     entity.NewBaseRecord(),
		CompanyID:      companyID,
		Name:           name,
		PayableRate:    payableRate,
		ReceivableRate: receivableRate,
	}
}

// Validate implements entity.Validatable. Rates are normalized in place
// to their canonical two-digit form.
func (q *Quality) Validate(ctx context.Context) error {
	if q.Name == "" {
		return apperror.NewValidation("quality name is required").
			WithDetail("field", "name")
	}

	payable, err := types.NormalizeRate("payableRate", q.PayableRate)
	if err != nil {
		return err
	}
	q.PayableRate = payable

	receivable, err := types.NormalizeRate("receivableRate", q.ReceivableRate)
	if err != nil {
		return err
	}
	q.ReceivableRate = receivable

	return nil
}
