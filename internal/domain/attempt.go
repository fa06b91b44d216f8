package domain

import (
	"time"

	"github.com/google/uuid"
)

// CodingAttempt is the persisted record of a graded submission.
type CodingAttempt struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	UserID          uuid.UUID    `db:"user_id" json:"userId"`
	QuestionID      string       `db:"question_id" json:"questionId"`
	QuestionTitle   string       `db:"question_title" json:"questionTitle"`
	QuestionType    QuestionType `db:"question_type" json:"questionType"`
	Language        Language     `db:"language" json:"language"`
	Code            string       `db:"code" json:"code"`
	Status          Status       `db:"status" json:"status"`
	Score           int          `db:"score" json:"score"`
	TimeTaken       float64      `db:"time_taken" json:"timeTaken"`
	TestCasesPassed int          `db:"test_cases_passed" json:"testCasesPassed"`
	TotalTestCases  int          `db:"total_test_cases" json:"totalTestCases"`
	ErrorMessage    string       `db:"error_message" json:"errorMessage,omitempty"`
	Feedback        string       `db:"feedback" json:"feedback"`
	SubmittedAt     time.Time    `db:"submitted_at" json:"submittedAt"`
}

// NewCodingAttempt builds the attempt record for a graded submission.
func NewCodingAttempt(userID uuid.UUID, q *Question, req *SubmissionRequest, res *GradedResult) *CodingAttempt {
	return &CodingAttempt{
		ID:              uuid.New(),
		UserID:          userID,
		QuestionID:      q.QuestionID,
		QuestionTitle:   q.Title,
		QuestionType:    q.Type,
		Language:        req.Language,
		Code:            req.Code,
		Status:          res.Status,
		Score:           res.Score,
		TimeTaken:       req.TimeTaken,
		TestCasesPassed: res.TestCasesPassed,
		TotalTestCases:  res.TotalTestCases,
		ErrorMessage:    res.ErrorMessage,
		Feedback:        res.Feedback,
		SubmittedAt:     time.Now(),
	}
}

type AttemptTable struct {
	ID              string
	UserID          string
	QuestionID      string
	QuestionTitle   string
	QuestionType    string
	Language        string
	Code            string
	Status          string
	Score           string
	TimeTaken       string
	TestCasesPassed string
	TotalTestCases  string
	ErrorMessage    string
	Feedback        string
	SubmittedAt     string
}

func GetAttemptTable() AttemptTable {
	return AttemptTable{
		ID:              "id",
		UserID:          "user_id",
		QuestionID:      "question_id",
		QuestionTitle:   "question_title",
		QuestionType:    "question_type",
		Language:        "language",
		Code:            "code",
		Status:          "status",
		Score:           "score",
		TimeTaken:       "time_taken",
		TestCasesPassed: "test_cases_passed",
		TotalTestCases:  "total_test_cases",
		ErrorMessage:    "error_message",
		Feedback:        "feedback",
		SubmittedAt:     "submitted_at",
	}
}

func (AttemptTable) TableName() string {
	return "coding_attempts"
}

// TypeStats and LanguageStats break coding statistics down.
type TypeStats struct {
	Attempts int `json:"attempts"`
	AvgScore int `json:"avgScore"`
	Correct  int `json:"correct"`
}

type LanguageStats struct {
	Attempts int `json:"attempts"`
	AvgScore int `json:"avgScore"`
}

// CodingStats summarises a user's coding attempts.
type CodingStats struct {
	TotalAttempts      int                        `json:"totalAttempts"`
	AverageScore       int                        `json:"averageScore"`
	CorrectSubmissions int                        `json:"correctSubmissions"`
	ByType             map[QuestionType]TypeStats `json:"byType"`
	ByLanguage         map[Language]LanguageStats `json:"byLanguage"`
}
