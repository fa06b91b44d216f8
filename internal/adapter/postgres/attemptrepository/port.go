// Package attemptrepository stores graded coding attempts in PostgreSQL.
package attemptrepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	querybuilder "gitlab.com/codeprep.net/internal/utils"
)

var _ secondary.AttemptRepository = (*AttemptRepository)(nil)

type AttemptRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewAttemptRepository(db *sqlx.DB, logger primary.Logger, schema string) *AttemptRepository {
	return &AttemptRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func columns() []string {
	tbl := domain.GetAttemptTable()
	return []string{
		tbl.ID, tbl.UserID, tbl.QuestionID, tbl.QuestionTitle, tbl.QuestionType,
		tbl.Language, tbl.Code, tbl.Status, tbl.Score, tbl.TimeTaken,
		tbl.TestCasesPassed, tbl.TotalTestCases, tbl.ErrorMessage, tbl.Feedback,
		tbl.SubmittedAt,
	}
}

// SaveAttempt inserts a graded attempt. Attempts are immutable once stored.
func (r *AttemptRepository) SaveAttempt(ctx context.Context, a *domain.CodingAttempt) error {
	tbl := domain.GetAttemptTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns()...).
		Into(tbl.TableName()).
		Values(
			a.ID, a.UserID, a.QuestionID, a.QuestionTitle, a.QuestionType,
			a.Language, a.Code, a.Status, a.Score, a.TimeTaken,
			a.TestCasesPassed, a.TotalTestCases, a.ErrorMessage, a.Feedback,
			a.SubmittedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save attempt", "attemptId", a.ID, "error", err)
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepository) ListAttempts(ctx context.Context, userID uuid.UUID, questionType domain.QuestionType, limit int) ([]*domain.CodingAttempt, error) {
	tbl := domain.GetAttemptTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID)
	if questionType != "" {
		qb = qb.And(fmt.Sprintf("%s = ?", tbl.QuestionType), questionType)
	}
	query, args := qb.OrderBy(tbl.SubmittedAt, false).Limit(limit).Build()

	return r.selectAttempts(ctx, query, args)
}

func (r *AttemptRepository) AllAttempts(ctx context.Context, userID uuid.UUID) ([]*domain.CodingAttempt, error) {
	tbl := domain.GetAttemptTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.SubmittedAt, false).
		Build()

	return r.selectAttempts(ctx, query, args)
}

func (r *AttemptRepository) selectAttempts(ctx context.Context, query string, args []interface{}) ([]*domain.CodingAttempt, error) {
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	attempts := make([]*domain.CodingAttempt, 0)
	if err := r.db.SelectContext(ctx, &attempts, query, args...); err != nil {
		r.logger.Error("Failed to list attempts", "error", err)
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return attempts, nil
}
