package questionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	querybuilder "gitlab.com/codeprep.net/internal/utils"
)

var _ secondary.QuestionRepository = (*QuestionRepository)(nil)

const acceptanceRateExpr = "CASE WHEN total_submissions = 0 THEN 0 ELSE ROUND(total_accepted * 100.0 / total_submissions, 1) END AS acceptance_rate"

type QuestionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewQuestionRepository(db *sqlx.DB, logger primary.Logger, schema string) *QuestionRepository {
	return &QuestionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (r *QuestionRepository) table() string {
	name := domain.GetQuestionTable().TableName()
	if r.schema == "" {
		return name
	}
	return r.schema + "." + name
}

func contentColumns() []string {
	tbl := domain.GetQuestionTable()
	return []string{
		tbl.QuestionID, tbl.Type, tbl.Title, tbl.Description, tbl.Difficulty,
		tbl.Topic, tbl.FunctionName, tbl.TimeLimit, tbl.Constraints,
		tbl.TestCases, tbl.Examples, tbl.Tags, tbl.StarterCode,
	}
}

func allColumns() []string {
	tbl := domain.GetQuestionTable()
	return append(contentColumns(), tbl.TotalSubmissions, tbl.TotalAccepted, tbl.CreatedAt)
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	tbl := domain.GetQuestionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(allColumns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.QuestionID), questionID).
		Build()

	return r.getOne(ctx, query, args)
}

func (r *QuestionRepository) RandomQuestion(ctx context.Context, questionType domain.QuestionType, difficulty domain.Difficulty) (*domain.Question, error) {
	tbl := domain.GetQuestionTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(allColumns()...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.Type), questionType)
	if difficulty != "" {
		qb = qb.And(fmt.Sprintf("%s = ?", tbl.Difficulty), difficulty)
	}
	query, args := qb.OrderBy("random()", true).Limit(1).Build()

	return r.getOne(ctx, query, args)
}

func (r *QuestionRepository) getOne(ctx context.Context, query string, args []interface{}) (*domain.Question, error) {
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var q domain.Question
	if err := r.db.GetContext(ctx, &q, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to load question", "error", err)
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return &q, nil
}

func (r *QuestionRepository) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.QuestionSummary, int, error) {
	countQuery, countArgs := r.listQuery(filter, "COUNT(*)").Build()
	var total int
	if err := r.db.GetContext(ctx, &total, sqlx.Rebind(sqlx.DOLLAR, countQuery), countArgs...); err != nil {
		r.logger.Error("Failed to count questions", "error", err)
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	tbl := domain.GetQuestionTable()
	solvedCol := "FALSE AS is_solved"
	if filter.SolvedBy != "" {
		solvedCol = "(solved.solved_id IS NOT NULL) AS is_solved"
	}
	query, args := r.listQuery(filter, tbl.QuestionID, tbl.Title, tbl.Topic, tbl.Difficulty, tbl.Tags, acceptanceRateExpr, solvedCol).
		OrderBy(tbl.QuestionID, true).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Build()

	summaries := make([]*domain.QuestionSummary, 0)
	if err := r.db.SelectContext(ctx, &summaries, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to list questions", "error", err)
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	return summaries, total, nil
}

// listQuery selects cols from the question table with the listing predicates.
// With SolvedBy set, the user's accepted question ids are left joined as
// solved.solved_id so the status filter and is_solved read from one query.
func (r *QuestionRepository) listQuery(f domain.QuestionFilter, cols ...string) querybuilder.QueryBuilder {
	tbl := domain.GetQuestionTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(cols...).
		From(tbl.TableName())

	if f.SolvedBy != "" {
		attemptTbl := domain.GetAttemptTable()
		solvedSQL, solvedArgs := querybuilder.NewQueryBuilder(r.schema).
			Select(fmt.Sprintf("DISTINCT %s AS solved_id", attemptTbl.QuestionID)).
			From(attemptTbl.TableName()).
			Where(fmt.Sprintf("%s = ?", attemptTbl.UserID), f.SolvedBy).
			And(fmt.Sprintf("%s = ?", attemptTbl.Status), domain.StatusCorrect).
			Build()
		qb = qb.Join(querybuilder.JoinTypeLeft, "("+solvedSQL+")", "solved",
			fmt.Sprintf("solved.solved_id = %s", tbl.QuestionID), solvedArgs...)

		switch f.Status {
		case "solved":
			qb = qb.And("solved.solved_id IS NOT NULL")
		case "unsolved":
			qb = qb.And("solved.solved_id IS NULL")
		}
	}

	if f.Type != "" {
		qb = qb.And(fmt.Sprintf("%s = ?", tbl.Type), f.Type)
	}
	if f.Topic != "" {
		qb = qb.And(fmt.Sprintf("%s = ?", tbl.Topic), f.Topic)
	}
	if len(f.Difficulties) > 0 {
		values := make([]string, len(f.Difficulties))
		for i, d := range f.Difficulties {
			values[i] = string(d)
		}
		qb = qb.And(fmt.Sprintf("%s = ANY(?)", tbl.Difficulty), pq.Array(values))
	}
	if f.Search != "" {
		qb = qb.And(fmt.Sprintf("%s ILIKE ?", tbl.Title), "%"+f.Search+"%")
	}
	return qb
}

func (r *QuestionRepository) Overview(ctx context.Context) (*domain.QuestionOverview, error) {
	overview := &domain.QuestionOverview{
		Difficulty: map[string]int{
			string(domain.DifficultyEasy):   0,
			string(domain.DifficultyMedium): 0,
			string(domain.DifficultyHard):   0,
		},
		Topics: make([]domain.TopicCount, 0),
	}

	var byDifficulty []struct {
		Difficulty string `db:"difficulty"`
		Count      int    `db:"count"`
	}
	query := fmt.Sprintf("SELECT difficulty, COUNT(*) AS count FROM %s GROUP BY difficulty", r.table())
	if err := r.db.SelectContext(ctx, &byDifficulty, query); err != nil {
		return nil, fmt.Errorf("failed to count questions by difficulty: %w", err)
	}
	for _, d := range byDifficulty {
		overview.Difficulty[d.Difficulty] = d.Count
		overview.Total += d.Count
	}

	query = fmt.Sprintf("SELECT topic, COUNT(*) AS count FROM %s GROUP BY topic ORDER BY count DESC, topic ASC", r.table())
	if err := r.db.SelectContext(ctx, &overview.Topics, query); err != nil {
		return nil, fmt.Errorf("failed to count questions by topic: %w", err)
	}

	return overview, nil
}

// SaveQuestion upserts the question content. Submission counters survive re-seeding.
func (r *QuestionRepository) SaveQuestion(ctx context.Context, q *domain.Question) error {
	tbl := domain.GetQuestionTable()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	content := contentColumns()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(append(content, tbl.CreatedAt)...).
		Into(tbl.TableName()).
		Values(
			q.QuestionID, q.Type, q.Title, q.Description, q.Difficulty,
			q.Topic, q.FunctionName, q.TimeLimit, q.Constraints,
			q.TestCases, q.Examples, q.Tags, q.StarterCode,
			q.CreatedAt,
		).
		OnConflict(tbl.QuestionID).
		SetExclude(content[1:]...).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save question", "questionId", q.QuestionID, "error", err)
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) RecordSubmission(ctx context.Context, questionID string, accepted bool) error {
	inc := 0
	if accepted {
		inc = 1
	}
	query := fmt.Sprintf(`
		UPDATE %s
		SET total_submissions = total_submissions + 1,
			total_accepted = total_accepted + $2
		WHERE question_id = $1`, r.table())

	if _, err := r.db.ExecContext(ctx, query, questionID, inc); err != nil {
		r.logger.Error("Failed to record submission", "questionId", questionID, "error", err)
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}
