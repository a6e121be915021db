package dto

import (
	"milldesk/internal/domain/reports"
)

// BreakdownRowResponse is one quality's share in a stats response.
type BreakdownRowResponse struct {
	QualityID string  `json:"qualityId"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Amount    float64 `json:"amount"`
}

func fromBreakdown(rows []reports.BreakdownRow) []BreakdownRowResponse {
	out := make([]BreakdownRowResponse, len(rows))
	for i, r := range rows {
		out[i] = BreakdownRowResponse{
			QualityID: r.QualityID.String(),
			Name:      r.Name,
			Count:     r.Count,
			Amount:    r.Amount,
		}
	}
	return out
}

// CompanyStatsResponse is the per-company monthly stats payload.
type CompanyStatsResponse struct {
	CompanyID  string                 `json:"companyId"`
	Month      string                 `json:"month"`
	Receivable float64                `json:"receivable"`
	Payable    float64                `json:"payable"`
	Profit     float64                `json:"profit"`
	Taar       float64                `json:"taar"`
	EntryCount int                    `json:"entryCount"`
	Breakdown  []BreakdownRowResponse `json:"breakdown"`
}

// FromCompanyStats creates response from domain stats.
func FromCompanyStats(s *reports.CompanyStats) *CompanyStatsResponse {
	return &CompanyStatsResponse{
		CompanyID:  s.CompanyID.String(),
		Month:      s.Month,
		Receivable: s.Totals.Receivable,
		Payable:    s.Totals.Payable,
		Profit:     s.Totals.Profit,
		Taar:       s.Totals.Taar,
		EntryCount: s.EntryCount,
		Breakdown:  fromBreakdown(s.Breakdown),
	}
}

// DashboardResponse backs the landing page cards.
type DashboardResponse struct {
	TotalCompanies int64 `json:"totalCompanies"`
	TotalQualities int64 `json:"totalQualities"`
	MonthEntries   int64 `json:"monthEntries"`
}

// FromDashboard creates response from domain stats.
func FromDashboard(s *reports.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalCompanies: s.TotalCompanies,
		TotalQualities: s.TotalQualities,
		MonthEntries:   s.MonthEntries,
	}
}
