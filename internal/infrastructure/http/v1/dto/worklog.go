package dto

import (
	"time"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/reports"
	"milldesk/internal/domain/worklog"
)

const dateLayout = "2006-01-02"

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date format, expected YYYY-MM-DD").
			WithDetail("field", "date")
	}
	return t, nil
}

// --- Request DTOs ---

// CreateWorkLogRequest is the request body for logging one day of work.
type CreateWorkLogRequest struct {
	Date        string `json:"date" binding:"required"`
	MachineNo   string `json:"machineNo" binding:"required"`
	Taar        string `json:"taar"`
	KarigarName string `json:"karigarName" binding:"required"`
	CompanyID   string `json:"companyId" binding:"required,uuid"`
	QualityID   string `json:"qualityId" binding:"required,uuid"`
}

// ToEntity converts DTO to domain entity owned by the given user.
func (r *CreateWorkLogRequest) ToEntity(userID id.ID) (*worklog.Entry, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	companyID, err := id.Parse(r.CompanyID)
	if err != nil {
		return nil, apperror.NewValidation("invalid companyId").WithDetail("field", "companyId")
	}
	qualityID, err := id.Parse(r.QualityID)
	if err != nil {
		return nil, apperror.NewValidation("invalid qualityId").WithDetail("field", "qualityId")
	}

	entry := worklog.NewEntry(date, r.MachineNo, r.KarigarName, companyID, qualityID)
	entry.Taar = r.Taar
	entry.UserID = userID
	return entry, nil
}

// ListWorkLogsRequest holds the query parameters of the list endpoint.
// companyId, qualityId, from and to translate to SQL conditions; quality,
// karigar and machine are free-text table filters applied in memory.
type ListWorkLogsRequest struct {
	CompanyID string `form:"companyId"`
	QualityID string `form:"qualityId"`
	From      string `form:"from"`
	To        string `form:"to"`
	Quality   string `form:"quality"`
	Karigar   string `form:"karigar"`
	Machine   string `form:"machine"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// TextFilters builds the in-memory predicate for the free-text filters.
// The second result reports whether any of them is set.
func (r *ListWorkLogsRequest) TextFilters() (reports.Predicate, bool) {
	if r.Quality == "" && r.Karigar == "" && r.Machine == "" {
		return nil, false
	}
	return reports.And(
		reports.QualityName(r.Quality),
		reports.Karigar(r.Karigar),
		reports.Machine(r.Machine),
	), true
}

// ToFilter converts query parameters to a repository filter scoped to
// the given user. The "to" date is widened by one day so the range is
// inclusive from the caller's point of view.
func (r *ListWorkLogsRequest) ToFilter(userID id.ID) (worklog.Filter, error) {
	filter := worklog.Filter{
		UserID: userID,
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	if r.CompanyID != "" {
		companyID, err := id.Parse(r.CompanyID)
		if err != nil {
			return filter, apperror.NewValidation("invalid companyId").WithDetail("field", "companyId")
		}
		filter.CompanyID = companyID
	}
	if r.QualityID != "" {
		qualityID, err := id.Parse(r.QualityID)
		if err != nil {
			return filter, apperror.NewValidation("invalid qualityId").WithDetail("field", "qualityId")
		}
		filter.QualityID = qualityID
	}
	if r.From != "" {
		from, err := parseDate(r.From)
		if err != nil {
			return filter, err
		}
		filter.From = from
	}
	if r.To != "" {
		to, err := parseDate(r.To)
		if err != nil {
			return filter, err
		}
		filter.To = to.AddDate(0, 0, 1)
	}

	return filter, nil
}

// --- Response DTOs ---

// WorkLogResponse is the response body for a work log entry, with the
// referenced quality and company resolved for display.
type WorkLogResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	MachineNo   string    `json:"machineNo"`
	Taar        string    `json:"taar"`
	KarigarName string    `json:"karigarName"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName,omitempty"`
	QualityID   string    `json:"qualityId"`
	QualityName string    `json:"qualityName,omitempty"`
	PayableRate string    `json:"payableRate,omitempty"`
	RecvRate    string    `json:"receivableRate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromWorkLog creates response DTO from domain entity.
func FromWorkLog(e *worklog.Entry) *WorkLogResponse {
	resp := &WorkLogResponse{
		ID:          e.ID.String(),
		Date:        e.Date,
		MachineNo:   e.MachineNo,
		Taar:        e.Taar,
		KarigarName: e.KarigarName,
		CompanyID:   e.CompanyID.String(),
		CompanyName: e.CompanyName,
		QualityID:   e.QualityID.String(),
		CreatedAt:   e.CreatedAt,
	}
	if e.Quality != nil {
		resp.QualityName = e.Quality.Name
		resp.PayableRate = e.Quality.PayableRate
		resp.RecvRate = e.Quality.ReceivableRate
	}
	return resp
}
