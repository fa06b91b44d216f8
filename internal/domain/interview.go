package domain

import (
	"time"

	"github.com/google/uuid"
)

// InterviewCategory is a multiple choice quiz bank.
type InterviewCategory string

const (
	InterviewTechnical InterviewCategory = "technical"
	InterviewHR        InterviewCategory = "hr"
	InterviewAptitude  InterviewCategory = "aptitude"
	// InterviewCoding is not a quiz bank; clients are pointed at the coding endpoints.
	InterviewCoding InterviewCategory = "coding"
)

var InterviewCategories = []InterviewCategory{InterviewTechnical, InterviewHR, InterviewAptitude}

type InterviewQuestion struct {
	ID       int      `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Correct  int      `json:"-" yaml:"correct"`
}

// InterviewSubmission is one completed quiz as answered by the client.
type InterviewSubmission struct {
	Category  InterviewCategory
	Answers   []int
	TimeTaken float64
}

// Interview is the persisted result of a quiz session.
type Interview struct {
	ID             uuid.UUID         `db:"id" json:"id"`
	UserID         uuid.UUID         `db:"user_id" json:"userId"`
	Category       InterviewCategory `db:"category" json:"category"`
	Score          int               `db:"score" json:"score"`
	TotalQuestions int               `db:"total_questions" json:"totalQuestions"`
	CorrectAnswers int               `db:"correct_answers" json:"correctAnswers"`
	TimeTaken      float64           `db:"time_taken" json:"timeTaken"`
	Feedback       string            `db:"feedback" json:"feedback"`
	CompletedAt    time.Time         `db:"completed_at" json:"completedAt"`
}

type CategoryStats struct {
	Count    int `json:"count"`
	AvgScore int `json:"avgScore"`
}

type InterviewStats struct {
	TotalInterviews int                                 `json:"totalInterviews"`
	AverageScore    int                                 `json:"averageScore"`
	ByCategory      map[InterviewCategory]CategoryStats `json:"byCategory"`
}

type InterviewTable struct {
	ID             string
	UserID         string
	Category       string
	Score          string
	TotalQuestions string
	CorrectAnswers string
	TimeTaken      string
	Feedback       string
	CompletedAt    string
}

func GetInterviewTable() InterviewTable {
	return InterviewTable{
		ID:             "id",
		UserID:         "user_id",
		Category:       "category",
		Score:          "score",
		TotalQuestions: "total_questions",
		CorrectAnswers: "correct_answers",
		TimeTaken:      "time_taken",
		Feedback:       "feedback",
		CompletedAt:    "completed_at",
	}
}

func (InterviewTable) TableName() string {
	return "interviews"
}

// InterviewResult is returned after a quiz is scored and stored.
type InterviewResult struct {
	InterviewID    uuid.UUID `json:"interviewId"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeTaken      float64   `json:"timeTaken"`
	Feedback       string    `json:"feedback"`
}
