package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/infrastructure/storage/postgres"
)

const companyTable = "cat_companies"

// CompanyRepo implements company.Repository.
type CompanyRepo struct {
	*BaseCatalogRepo[*company.Company]
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(txManager *postgres.TxManager) *CompanyRepo {
	return &CompanyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*company.Company](
			txManager,
			companyTable,
			postgres.ExtractDBColumns[company.Company](),
			func() *company.Company { return &company.Company{} },
		),
	}
}

// CountByUser counts non-deleted companies owned by a user.
func (r *CompanyRepo) CountByUser(ctx context.Context, userID id.ID) (int64, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(companyTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}

	return count, nil
}
