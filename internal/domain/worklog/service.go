package worklog

import (
	"context"
	"fmt"
	"time"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/core/tx"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/pkg/logger"
)

// Service provides business logic for work log entries.
type Service struct {
	repo      Repository
	qualities *quality.Service
	txManager tx.Manager
}

// NewService creates a new work log service.
func NewService(repo Repository, qualities *quality.Service, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		qualities: qualities,
		txManager: txManager,
	}
}

// Create validates and inserts a new entry. The referenced quality
// must belong to the entry's company.
func (s *Service) Create(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}

	ok, err := s.qualities.BelongsToCompany(ctx, entry.QualityID, entry.CompanyID)
	if err != nil {
		return fmt.Errorf("check quality ownership: %w", err)
	}
	if !ok {
		return apperror.NewQualityMismatch(entry.QualityID.String(), entry.CompanyID.String())
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create work log entry: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an entry and verifies ownership.
func (s *Service) GetByID(ctx context.Context, entryID, userID id.ID) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("work log entry", entryID.String())
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, apperror.NewForbidden("work log entry belongs to another user")
	}
	return entry, nil
}

// List retrieves entries matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	if id.IsNil(filter.UserID) {
		return nil, apperror.NewValidation("user scope is required")
	}
	return s.repo.List(ctx, filter)
}

// Count counts entries matching the filter.
func (s *Service) Count(ctx context.Context, filter Filter) (int64, error) {
	return s.repo.Count(ctx, filter)
}

// ListMonth retrieves a company's entries for one calendar month.
// The month bound is half-open: [first of month, first of next month).
func (s *Service) ListMonth(ctx context.Context, userID, companyID id.ID, month time.Time) ([]*Entry, error) {
	from, to := MonthBounds(month)
	return s.List(ctx, Filter{
		UserID:    userID,
		CompanyID: companyID,
		From:      from,
		To:        to,
	})
}

// Delete removes one entry after an ownership check.
func (s *Service) Delete(ctx context.Context, entryID, userID id.ID) error {
	if _, err := s.GetByID(ctx, entryID, userID); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, entryID); err != nil {
			return fmt.Errorf("delete work log entry: %w", err)
		}
		return nil
	})
}

// DeleteMonth removes all of a company's entries for one calendar month.
// Returns the number of deleted entries.
func (s *Service) DeleteMonth(ctx context.Context, companyID id.ID, month time.Time) (int64, error) {
	from, to := MonthBounds(month)

	var deleted int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.DeleteByCompanyAndRange(ctx, companyID, from, to)
		if err != nil {
			return fmt.Errorf("delete month entries: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "deleted work log entries for month",
		"company_id", companyID, "month", month.Format("2006-01"), "count", deleted)
	return deleted, nil
}

// DeleteByCompany removes all entries of a company. Used when a
// company is removed.
func (s *Service) DeleteByCompany(ctx context.Context, companyID id.ID) (int64, error) {
	var deleted int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.DeleteByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("delete company entries: %w", err)
		}
		deleted = n
		return nil
	})
	return deleted, err
}

// MonthBounds returns the half-open interval [first of month,
// first of next month) for the month containing t, in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
