package reports

import (
	"context"
	"fmt"
	"time"

	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/internal/domain/worklog"
)

// Service provides aggregation, stats, and monthly report generation.
type Service struct {
	companies   *company.Service
	qualityRepo quality.Repository
	worklogs    *worklog.Service
}

// NewService creates a new reports service.
func NewService(companies *company.Service, qualityRepo quality.Repository, worklogs *worklog.Service) *Service {
	return &Service{
		companies:   companies,
		qualityRepo: qualityRepo,
		worklogs:    worklogs,
	}
}

// GenerateMonthly builds the monthly report model for one company.
// Month defaults to the current calendar month when zero.
func (s *Service) GenerateMonthly(ctx context.Context, userID, companyID id.ID, month time.Time) (*MonthlyReport, error) {
	if month.IsZero() {
		month = time.Now()
	}

	c, err := s.companies.GetOwned(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.worklogs.ListMonth(ctx, userID, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("load month entries: %w", err)
	}

	return BuildMonthlyReport(c, entries, month)
}

// CompanyStats aggregates one company's entries for a month into the
// stats card totals. Month defaults to the current calendar month.
func (s *Service) CompanyStats(ctx context.Context, userID, companyID id.ID, month time.Time) (*CompanyStats, error) {
	if month.IsZero() {
		month = time.Now()
	}

	if _, err := s.companies.GetOwned(ctx, companyID, userID); err != nil {
		return nil, err
	}

	entries, err := s.worklogs.ListMonth(ctx, userID, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("load month entries: %w", err)
	}

	agg, err := Aggregate(entries)
	if err != nil {
		return nil, err
	}

	return &CompanyStats{
		CompanyID:  companyID,
		Month:      month.Format("2006-01"),
		Totals:     agg.Totals,
		Breakdown:  agg.Breakdown,
		EntryCount: agg.EntryCount,
	}, nil
}

// Dashboard computes the landing page stats for a user.
func (s *Service) Dashboard(ctx context.Context, userID id.ID) (*DashboardStats, error) {
	companies, err := s.companies.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}

	qualities, err := s.qualityRepo.CountDistinctNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count qualities: %w", err)
	}

	from, to := worklog.MonthBounds(time.Now())
	monthEntries, err := s.worklogs.Count(ctx, worklog.Filter{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, fmt.Errorf("count month entries: %w", err)
	}

	return &DashboardStats{
		TotalCompanies: companies,
		TotalQualities: qualities,
		MonthEntries:   monthEntries,
	}, nil
}
