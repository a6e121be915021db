// Package worklog_repo provides the PostgreSQL work log repository.
package worklog_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/worklog"
	"milldesk/internal/infrastructure/storage/postgres"
)

const (
	worklogTable = "doc_work_logs"
	qualityTable = "cat_qualities"
	companyTable = "cat_companies"
)

// Repo implements worklog.Repository.
type Repo struct {
	txManager *postgres.TxManager
}

// NewRepo creates a new work log repository.
func NewRepo(txManager *postgres.TxManager) *Repo {
	return &Repo{txManager: txManager}
}

func (r *Repo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// baseSelect joins the resolved quality and company name onto each
// entry. The aliased "quality.*" columns scan into the nested
// QualityRef struct.
func (r *Repo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(
			"w.id", "w.deletion_mark", "w.version", "w.created_at", "w.updated_at",
			"w.date", "w.machine_no", "w.taar", "w.karigar_name",
			"w.company_id", "w.quality_id", "w.user_id",
			`q.name AS "quality.name"`,
			`q.payable_rate AS "quality.payable_rate"`,
			`q.receivable_rate AS "quality.receivable_rate"`,
			"c.name AS company_name",
		).
		From(worklogTable + " w").
		LeftJoin(qualityTable + " q ON q.id = w.quality_id").
		LeftJoin(companyTable + " c ON c.id = w.company_id")
}

// Create inserts a new entry.
func (r *Repo) Create(ctx context.Context, entry *worklog.Entry) error {
	q := r.builder().
		Insert(worklogTable).
		SetMap(map[string]any{
			"id":            entry.ID,
			"deletion_mark": entry.DeletionMark,
			"version":       entry.Version,
			"created_at":    entry.CreatedAt,
			"updated_at":    entry.UpdatedAt,
			"date":          entry.Date,
			"machine_no":    entry.MachineNo,
			"taar":          entry.Taar,
			"karigar_name":  entry.KarigarName,
			"company_id":    entry.CompanyID,
			"quality_id":    entry.QualityID,
			"user_id":       entry.UserID,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert work log entry: %w", err)
	}

	return nil
}

// GetByID retrieves an entry with its resolved quality.
func (r *Repo) GetByID(ctx context.Context, entryID id.ID) (*worklog.Entry, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"w.id": entryID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entry worklog.Entry
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &entry, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("work log entry", entryID.String())
		}
		return nil, fmt.Errorf("get work log entry: %w", err)
	}

	return &entry, nil
}

func (r *Repo) applyFilter(q squirrel.SelectBuilder, filter worklog.Filter) squirrel.SelectBuilder {
	if !id.IsNil(filter.UserID) {
		q = q.Where(squirrel.Eq{"w.user_id": filter.UserID})
	}
	if !id.IsNil(filter.CompanyID) {
		q = q.Where(squirrel.Eq{"w.company_id": filter.CompanyID})
	}
	if !id.IsNil(filter.QualityID) {
		q = q.Where(squirrel.Eq{"w.quality_id": filter.QualityID})
	}
	if !filter.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"w.date": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.Lt{"w.date": filter.To})
	}
	return q
}

// List retrieves entries matching the filter, ordered by date then
// by id so equal dates keep insertion order (UUIDv7 is time-ordered).
func (r *Repo) List(ctx context.Context, filter worklog.Filter) ([]*worklog.Entry, error) {
	q := r.applyFilter(r.baseSelect(), filter).
		OrderBy("w.date ASC", "w.id ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	entries := []*worklog.Entry{}
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list work log entries: %w", err)
	}

	return entries, nil
}

// Count counts entries matching the filter.
func (r *Repo) Count(ctx context.Context, filter worklog.Filter) (int64, error) {
	q := r.builder().
		Select("COUNT(*)").
		From(worklogTable + " w")
	q = r.applyFilter(q, filter)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count work log entries: %w", err)
	}

	return count, nil
}

// Delete removes one entry permanently.
func (r *Repo) Delete(ctx context.Context, entryID id.ID) error {
	q := r.builder().
		Delete(worklogTable).
		Where(squirrel.Eq{"id": entryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete work log entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("work log entry", entryID.String())
	}

	return nil
}

// DeleteByCompanyAndRange removes all entries of a company whose date
// falls in [from, to).
func (r *Repo) DeleteByCompanyAndRange(ctx context.Context, companyID id.ID, from, to time.Time) (int64, error) {
	q := r.builder().
		Delete(worklogTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete work log entries: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteByCompany removes all entries of a company.
func (r *Repo) DeleteByCompany(ctx context.Context, companyID id.ID) (int64, error) {
	q := r.builder().
		Delete(worklogTable).
		Where(squirrel.Eq{"company_id": companyID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete work log entries: %w", err)
	}

	return result.RowsAffected(), nil
}
