package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/internal/infrastructure/storage/postgres"
)

const qualityTable = "cat_qualities"

// QualityRepo implements quality.Repository. Qualities are a child
// table of companies; edits replace a company's set as a whole, so
// there is no per-row update path.
type QualityRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewQualityRepo creates a new quality repository.
func NewQualityRepo(txManager *postgres.TxManager) *QualityRepo {
	return &QualityRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[quality.Quality](),
	}
}

func (r *QualityRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *QualityRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(qualityTable)
}

// GetByID retrieves a quality by ID.
func (r *QualityRepo) GetByID(ctx context.Context, qualityID id.ID) (*quality.Quality, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": qualityID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var result quality.Quality
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &result, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("quality", qualityID.String())
		}
		return nil, fmt.Errorf("get quality: %w", err)
	}

	return &result, nil
}

// ListByCompany retrieves all qualities of one company, ordered by name.
func (r *QualityRepo) ListByCompany(ctx context.Context, companyID id.ID) ([]*quality.Quality, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []*quality.Quality{}
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list qualities: %w", err)
	}

	return items, nil
}

// ListByCompanies retrieves qualities for a set of companies in one query.
func (r *QualityRepo) ListByCompanies(ctx context.Context, companyIDs []id.ID) (map[id.ID][]*quality.Quality, error) {
	result := make(map[id.ID][]*quality.Quality, len(companyIDs))
	if len(companyIDs) == 0 {
		return result, nil
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"company_id": companyIDs}).
		OrderBy("company_id", "name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []*quality.Quality{}
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list qualities: %w", err)
	}

	for _, item := range items {
		result[item.CompanyID] = append(result[item.CompanyID], item)
	}

	return result, nil
}

// ReplaceForCompany atomically replaces the company's quality set.
// Caller is expected to run this inside a transaction.
func (r *QualityRepo) ReplaceForCompany(ctx context.Context, companyID id.ID, qualities []*quality.Quality) error {
	if err := r.DeleteByCompany(ctx, companyID); err != nil {
		return err
	}

	if len(qualities) == 0 {
		return nil
	}

	q := r.builder().
		Insert(qualityTable).
		Columns("id", "deletion_mark", "version", "created_at", "updated_at",
			"company_id", "name", "payable_rate", "receivable_rate")

	for _, item := range qualities {
		q = q.Values(item.ID, item.DeletionMark, item.Version, item.CreatedAt, item.UpdatedAt,
			companyID, item.Name, item.PayableRate, item.ReceivableRate)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert qualities: %w", err)
	}

	return nil
}

// DeleteByCompany removes all qualities of a company.
func (r *QualityRepo) DeleteByCompany(ctx context.Context, companyID id.ID) error {
	q := r.builder().
		Delete(qualityTable).
		Where(squirrel.Eq{"company_id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete qualities: %w", err)
	}

	return nil
}

// BelongsToCompany reports whether the quality is owned by the company.
func (r *QualityRepo) BelongsToCompany(ctx context.Context, qualityID, companyID id.ID) (bool, error) {
	q := r.builder().
		Select("1").
		From(qualityTable).
		Where(squirrel.Eq{"id": qualityID}).
		Where(squirrel.Eq{"company_id": companyID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check quality ownership: %w", err)
	}

	return true, nil
}

// CountDistinctNames counts distinct quality names across all
// non-deleted companies of a user.
func (r *QualityRepo) CountDistinctNames(ctx context.Context, userID id.ID) (int64, error) {
	q := r.builder().
		Select("COUNT(DISTINCT q.name)").
		From(qualityTable + " q").
		Join(companyTable + " c ON c.id = q.company_id").
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.Eq{"c.deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct qualities: %w", err)
	}

	return count, nil
}
