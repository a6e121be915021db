// Package worklog provides daily production records: one entry per
// worker ("karigar") per machine producing a given quality on a date.
package worklog

import (
	"context"
	"time"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
	"milldesk/internal/core/types"
)

// QualityRef carries the resolved quality fields an entry references.
// Rates are read live at query time, so a rate edit retroactively
// changes computed amounts for past entries.
type QualityRef struct {
	Name           string `db:"name" json:"name"`
	PayableRate    string `db:"payable_rate" json:"payableRate"`
	ReceivableRate string `db:"receivable_rate" json:"receivableRate"`
}

// Entry represents one production record.
type Entry struct {
	entity.BaseRecord

	// Date of the production run. Time-of-day is not significant.
	Date time.Time `db:"date" json:"date"`

	// MachineNo identifies the loom the work was done on.
	MachineNo string `db:"machine_no" json:"machineNo"`

	// Taar is the thread count, a non-negative decimal with 3 fractional digits.
	Taar string `db:"taar" json:"taar"`

	// KarigarName is the worker who produced the run.
	KarigarName string `db:"karigar_name" json:"karigarName"`

	CompanyID id.ID `db:"company_id" json:"companyId"`
	QualityID id.ID `db:"quality_id" json:"qualityId"`

	// UserID is the owning user, copied from the company at create time.
	UserID id.ID `db:"user_id" json:"userId"`

	// Quality is the resolved reference, populated on reads.
	Quality *QualityRef `db:"quality" json:"quality,omitempty"`

	// CompanyName is resolved on reads for display.
	CompanyName string `db:"company_name" json:"companyName,omitempty"`
}

// NewEntry creates an Entry with required fields.
func NewEntry(date time.Time, machineNo, karigarName string, companyID, qualityID id.ID) *Entry {
	return &Entry{
		BaseRecord:  entity.NewBaseRecord(),
		Date:        date,
		MachineNo:   machineNo,
		KarigarName: karigarName,
		CompanyID:   companyID,
		QualityID:   qualityID,
	}
}

// Validate implements entity.Validatable. Taar is normalized in place
// to its canonical three-digit form (empty taar becomes "0.000").
func (e *Entry) Validate(ctx context.Context) error {
	if e.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if e.MachineNo == "" {
		return apperror.NewValidation("machine number is required").
			WithDetail("field", "machineNo")
	}
	if e.KarigarName == "" {
		return apperror.NewValidation("karigar name is required").
			WithDetail("field", "karigarName")
	}
	if id.IsNil(e.CompanyID) {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}
	if id.IsNil(e.QualityID) {
		return apperror.NewValidation("quality is required").
			WithDetail("field", "qualityId")
	}

	taar, err := types.NormalizeTaar(e.Taar)
	if err != nil {
		return err
	}
	e.Taar = taar

	return nil
}
