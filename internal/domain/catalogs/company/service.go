package company

import (
	"context"
	"fmt"
	"time"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/core/tx"
	"milldesk/internal/domain"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/pkg/numerator"
)

// Service provides business logic for the Company catalog.
// Uses composition with domain.CatalogService for common CRUD operations;
// Create, Update, GetByID and List are shadowed because the qualities
// child collection is persisted alongside the company row.
type Service struct {
	*domain.CatalogService[*Company]
	repo        Repository
	qualityRepo quality.Repository
	txManager   tx.Manager
	numerator   *numerator.Service
}

// NewService creates a new Company service.
func NewService(
	repo Repository,
	qualityRepo quality.Repository,
	txManager tx.Manager,
	num *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Company]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "company",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		qualityRepo:    qualityRepo,
		txManager:      txManager,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates the company code when not provided.
func (s *Service) prepareForCreate(ctx context.Context, c *Company) error {
	if c.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CO"), time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}
	return nil
}

// Create creates a company together with its qualities in one transaction.
func (s *Service) Create(ctx context.Context, c *Company) error {
	if err := c.Validate(ctx); err != nil {
		return s.normalizeValidation(err)
	}

	if err := s.Hooks().RunBeforeCreate(ctx, c); err != nil {
		return err
	}

	for _, q := range c.Qualities {
		q.CompanyID = c.ID
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, c); err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		if len(c.Qualities) > 0 {
			if err := s.qualityRepo.ReplaceForCompany(ctx, c.ID, c.Qualities); err != nil {
				return fmt.Errorf("create qualities: %w", err)
			}
		}
		return nil
	})
}

// Update updates a company and replaces its quality set wholesale.
// Qualities absent from the submitted set are removed; the rest are
// reinserted with their submitted rates.
func (s *Service) Update(ctx context.Context, c *Company) error {
	if err := c.Validate(ctx); err != nil {
		return s.normalizeValidation(err)
	}

	if err := s.Hooks().RunBeforeUpdate(ctx, c); err != nil {
		return err
	}

	for _, q := range c.Qualities {
		q.CompanyID = c.ID
		if id.IsNil(q.ID) {
			q.ID = id.New()
		}
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, c); err != nil {
			return fmt.Errorf("update company: %w", err)
		}
		if err := s.qualityRepo.ReplaceForCompany(ctx, c.ID, c.Qualities); err != nil {
			return fmt.Errorf("replace qualities: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a company with its qualities loaded.
func (s *Service) GetByID(ctx context.Context, companyID id.ID) (*Company, error) {
	c, err := s.CatalogService.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.loadQualities(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetOwned retrieves a company and verifies the caller owns it.
func (s *Service) GetOwned(ctx context.Context, companyID, userID id.ID) (*Company, error) {
	c, err := s.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, apperror.NewForbidden("company belongs to another user")
	}
	return c, nil
}

// List retrieves companies with their qualities loaded in one extra query.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Company], error) {
	result, err := s.CatalogService.List(ctx, filter)
	if err != nil {
		return result, err
	}

	if len(result.Items) == 0 {
		return result, nil
	}

	ids := make([]id.ID, len(result.Items))
	for i, c := range result.Items {
		ids[i] = c.ID
	}

	byCompany, err := s.qualityRepo.ListByCompanies(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("load qualities: %w", err)
	}
	for _, c := range result.Items {
		c.Qualities = byCompany[c.ID]
		if c.Qualities == nil {
			c.Qualities = []*quality.Quality{}
		}
	}

	return result, nil
}

// WorkLogPurger removes all work log entries of a company. Satisfied
// by the worklog service; declared here to avoid a package dependency.
type WorkLogPurger interface {
	DeleteByCompany(ctx context.Context, companyID id.ID) (int64, error)
}

// Delete removes a company with everything it owns: work log entries,
// qualities, then the company row itself, in one transaction.
func (s *Service) Delete(ctx context.Context, companyID, userID id.ID, worklogs WorkLogPurger) error {
	c, err := s.GetOwned(ctx, companyID, userID)
	if err != nil {
		return err
	}

	if err := s.Hooks().RunBeforeDelete(ctx, c); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := worklogs.DeleteByCompany(ctx, companyID); err != nil {
			return fmt.Errorf("delete work logs: %w", err)
		}
		if err := s.qualityRepo.DeleteByCompany(ctx, companyID); err != nil {
			return fmt.Errorf("delete qualities: %w", err)
		}
		if err := s.repo.Delete(ctx, companyID); err != nil {
			return fmt.Errorf("delete company: %w", err)
		}
		return nil
	})
}

// CountByUser counts companies owned by a user.
func (s *Service) CountByUser(ctx context.Context, userID id.ID) (int64, error) {
	return s.repo.CountByUser(ctx, userID)
}

func (s *Service) loadQualities(ctx context.Context, c *Company) error {
	qualities, err := s.qualityRepo.ListByCompany(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("load qualities: %w", err)
	}
	c.Qualities = qualities
	return nil
}

func (s *Service) normalizeValidation(err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}
