package contributionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	querybuilder "gitlab.com/codeprep.net/internal/utils"
)

var _ secondary.ContributionRepository = (*ContributionRepository)(nil)

// ContributionRepository stores community contributions in PostgreSQL
type ContributionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewContributionRepository(db *sqlx.DB, logger primary.Logger, schema string) *ContributionRepository {
	return &ContributionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func columns() []string {
	tbl := domain.GetContributionTable()
	return []string{
		tbl.ID, tbl.UserID, tbl.Type, tbl.Status, tbl.Difficulty,
		tbl.CompanyType, tbl.Role, tbl.ExperienceLevel, tbl.CompanyName, tbl.Rounds, tbl.Questions, tbl.Tips,
		tbl.Title, tbl.Description, tbl.Category, tbl.SampleInput, tbl.SampleOutput, tbl.TestCases, tbl.Tags,
		tbl.ReviewedBy, tbl.ReviewedAt, tbl.ReviewNotes, tbl.CreatedAt,
	}
}

func qualifiedColumns() []string {
	cols := columns()
	prefix := domain.GetContributionTable().TableName() + "."
	for i, c := range cols {
		cols[i] = prefix + c
	}
	return cols
}

func (r *ContributionRepository) qualify(table string) string {
	if r.schema == "" {
		return table
	}
	return r.schema + "." + table
}

func (r *ContributionRepository) SaveContribution(ctx context.Context, c *domain.Contribution) error {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns()...).
		Into(domain.GetContributionTable().TableName()).
		Values(
			c.ID, c.UserID, c.Type, c.Status, c.Difficulty,
			c.CompanyType, c.Role, c.ExperienceLevel, c.CompanyName, c.Rounds, c.Questions, c.Tips,
			c.Title, c.Description, c.Category, c.SampleInput, c.SampleOutput, c.TestCases, c.Tags,
			c.ReviewedBy, c.ReviewedAt, c.ReviewNotes, c.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save contribution", "contributionId", c.ID, "error", err)
		return fmt.Errorf("failed to save contribution: %w", err)
	}
	return nil
}

func (r *ContributionRepository) GetContribution(ctx context.Context, id uuid.UUID) (*domain.Contribution, error) {
	tbl := domain.GetContributionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ID), id).
		Build()

	var c domain.Contribution
	if err := r.db.GetContext(ctx, &c, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to load contribution", "contributionId", id, "error", err)
		return nil, fmt.Errorf("failed to load contribution: %w", err)
	}
	return &c, nil
}

func (r *ContributionRepository) ListContributionsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contribution, error) {
	tbl := domain.GetContributionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.CreatedAt, false).
		Build()

	return r.list(ctx, query, args)
}

func (r *ContributionRepository) ListPendingContributions(ctx context.Context) ([]*domain.Contribution, error) {
	query, args := r.pendingQuery().Build()
	return r.list(ctx, query, args)
}

func (r *ContributionRepository) pendingQuery() querybuilder.QueryBuilder {
	tbl := domain.GetContributionTable()
	userTbl := domain.GetUserTable()
	cols := append(qualifiedColumns(),
		fmt.Sprintf("u.%s AS submitter_name", userTbl.Name),
		fmt.Sprintf("u.%s AS submitter_email", userTbl.Email))

	return querybuilder.NewQueryBuilder(r.schema).
		Select(cols...).
		From(tbl.TableName()).
		Join(querybuilder.JoinTypeInner, r.qualify(userTbl.GetTableName()), "u",
			fmt.Sprintf("u.%s = %s.%s", userTbl.ID, tbl.TableName(), tbl.UserID)).
		Where(fmt.Sprintf("%s.%s = ?", tbl.TableName(), tbl.Status), domain.ContributionPending).
		OrderBy(fmt.Sprintf("%s.%s", tbl.TableName(), tbl.CreatedAt), false)
}

func (r *ContributionRepository) list(ctx context.Context, query string, args []interface{}) ([]*domain.Contribution, error) {
	contributions := make([]*domain.Contribution, 0)
	if err := r.db.SelectContext(ctx, &contributions, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to list contributions", "error", err)
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return contributions, nil
}

func (r *ContributionRepository) ReviewContribution(ctx context.Context, c *domain.Contribution) (bool, error) {
	tbl := domain.GetContributionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(tbl.TableName(), querybuilder.UpdateData{
			tbl.Status:      c.Status,
			tbl.ReviewedBy:  c.ReviewedBy,
			tbl.ReviewedAt:  c.ReviewedAt,
			tbl.ReviewNotes: c.ReviewNotes,
		}).
		Where(fmt.Sprintf("%s = ?", tbl.ID), c.ID).
		And(fmt.Sprintf("%s = ?", tbl.Status), domain.ContributionPending).
		Build()

	res, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		r.logger.Error("Failed to review contribution", "contributionId", c.ID, "error", err)
		return false, fmt.Errorf("failed to review contribution: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to review contribution: %w", err)
	}
	return n == 1, nil
}

func (r *ContributionRepository) CountContributionsByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ContributionStatus]int, error) {
	tbl := domain.GetContributionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.Status, "COUNT(*) AS count").
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		GroupBy(tbl.Status).
		Build()

	var rows []struct {
		Status domain.ContributionStatus `db:"status"`
		Count  int                       `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to count contributions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to count contributions: %w", err)
	}
	counts := make(map[domain.ContributionStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
