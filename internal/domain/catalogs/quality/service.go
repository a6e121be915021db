package quality

import (
	"context"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
)

// Service provides read access to the Quality catalog. Writes go
// through the company service, which replaces a company's quality set
// as a whole.
type Service struct {
	repo Repository
}

// NewService creates a new Quality service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a quality by ID.
func (s *Service) GetByID(ctx context.Context, qualityID id.ID) (*Quality, error) {
	q, err := s.repo.GetByID(ctx, qualityID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("quality", qualityID.String())
		}
		return nil, err
	}
	return q, nil
}

// ListByCompany retrieves all qualities belonging to a company.
func (s *Service) ListByCompany(ctx context.Context, companyID id.ID) ([]*Quality, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

// BelongsToCompany reports whether a quality is owned by a company.
func (s *Service) BelongsToCompany(ctx context.Context, qualityID, companyID id.ID) (bool, error) {
	return s.repo.BelongsToCompany(ctx, qualityID, companyID)
}
