package interviewrepository

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

var _ secondary.InterviewRepository = (*InterviewRepository)(nil)

// InterviewRepository stores completed quiz sessions in PostgreSQL
type InterviewRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewInterviewRepository(db *sqlx.DB, logger primary.Logger, schema string) *InterviewRepository {
	return &InterviewRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func columns() []string {
	tbl := domain.GetInterviewTable()
	return []string{
		tbl.ID, tbl.UserID, tbl.Category, tbl.Score, tbl.TotalQuestions,
		tbl.CorrectAnswers, tbl.TimeTaken, tbl.Feedback, tbl.CompletedAt,
	}
}

func (r *InterviewRepository) SaveInterview(ctx context.Context, in *domain.Interview) error {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns()...).
		Into(domain.GetInterviewTable().TableName()).
		Values(
			in.ID, in.UserID, in.Category, in.Score, in.TotalQuestions,
			in.CorrectAnswers, in.TimeTaken, in.Feedback, in.CompletedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save interview", "interviewId", in.ID, "error", err)
		return fmt.Errorf("failed to save interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) ListInterviews(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Interview, error) {
	return r.list(ctx, userID, limit)
}

func (r *InterviewRepository) AllInterviews(ctx context.Context, userID uuid.UUID) ([]*domain.Interview, error) {
	return r.list(ctx, userID, 0)
}

func (r *InterviewRepository) list(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Interview, error) {
	tbl := domain.GetInterviewTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.CompletedAt, false).
		Limit(limit).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	interviews := make([]*domain.Interview, 0)
	if err := r.db.SelectContext(ctx, &interviews, query, args...); err != nil {
		r.logger.Error("Failed to list interviews", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}
