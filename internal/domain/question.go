package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// DefaultFunctionName is used when a question does not name its entry point.
const DefaultFunctionName = "solution"

// QuestionType groups questions for the coding practice area.
type QuestionType string

const (
	QuestionTypeDSA         QuestionType = "DSA"
	QuestionTypeProgramming QuestionType = "Programming"
)

func (t QuestionType) Valid() bool {
	return t == QuestionTypeDSA || t == QuestionTypeProgramming
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// TestCase is one hidden or sample input/expected-output pair.
// Input is a newline separated list of literal parameters.
type TestCase struct {
	Input          string `json:"input" yaml:"input"`
	ExpectedOutput string `json:"expectedOutput" yaml:"expectedOutput"`
	IsHidden       bool   `json:"isHidden" yaml:"isHidden"`
}

type TestCases []TestCase

// Samples returns the cases that may be shown to users.
func (t TestCases) Samples() TestCases {
	out := make(TestCases, 0, len(t))
	for _, tc := range t {
		if !tc.IsHidden {
			out = append(out, tc)
		}
	}
	return out
}

func (t TestCases) Value() (driver.Value, error) { return jsonValue(t) }
func (t *TestCases) Scan(src any) error { return jsonScan(src, t) }

type Example struct {
	Input       string `json:"input" yaml:"input"`
	Output      string `json:"output" yaml:"output"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation"`
}

type Examples []Example

func (e Examples) Value() (driver.Value, error) { return jsonValue(e) }
func (e *Examples) Scan(src any) error { return jsonScan(src, e) }

// StarterCode maps a language to its editor template.
type StarterCode map[Language]string

func (s StarterCode) Value() (driver.Value, error) { return jsonValue(s) }
func (s *StarterCode) Scan(src any) error { return jsonScan(src, s) }

// Question is a curated problem. The grading pipeline only reads
// QuestionID, FunctionName, TimeLimit and TestCases.
type Question struct {
	QuestionID       string         `db:"question_id" json:"questionId" yaml:"questionId"`
	Type             QuestionType   `db:"type" json:"type" yaml:"type"`
	Title            string         `db:"title" json:"title" yaml:"title"`
	Description      string         `db:"description" json:"description" yaml:"description"`
	Difficulty       Difficulty     `db:"difficulty" json:"difficulty" yaml:"difficulty"`
	Topic            string         `db:"topic" json:"topic" yaml:"topic"`
	FunctionName     string         `db:"function_name" json:"functionName" yaml:"functionName"`
	TimeLimit        int            `db:"time_limit" json:"timeLimit" yaml:"timeLimit"` // minutes
	Constraints      string         `db:"constraints" json:"constraints,omitempty" yaml:"constraints"`
	TestCases        TestCases      `db:"test_cases" json:"testCases" yaml:"testCases"`
	Examples         Examples       `db:"examples" json:"examples,omitempty" yaml:"examples"`
	Tags             pq.StringArray `db:"tags" json:"tags,omitempty" yaml:"tags"`
	StarterCode      StarterCode    `db:"starter_code" json:"starterCode,omitempty" yaml:"starterCode"`
	TotalSubmissions int            `db:"total_submissions" json:"totalSubmissions"`
	TotalAccepted    int            `db:"total_accepted" json:"totalAccepted"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
}

// EntryPoint returns the function the harness must call.
func (q *Question) EntryPoint() string {
	if q.FunctionName == "" {
		return DefaultFunctionName
	}
	return q.FunctionName
}

// TimeLimitSeconds converts the minute budget used for scoring.
func (q *Question) TimeLimitSeconds() float64 {
	return float64(q.TimeLimit) * 60
}

// AcceptanceRate is the percentage of accepted submissions, rounded to one decimal.
func (q *Question) AcceptanceRate() float64 {
	if q.TotalSubmissions == 0 {
		return 0
	}
	rate := float64(q.TotalAccepted) / float64(q.TotalSubmissions) * 100
	return float64(int(rate*10+0.5)) / 10
}

// QuestionSummary is the list view of a question.
type QuestionSummary struct {
	QuestionID     string         `db:"question_id" json:"questionId"`
	Title          string         `db:"title" json:"title"`
	Topic          string         `db:"topic" json:"topic"`
	Difficulty     Difficulty     `db:"difficulty" json:"difficulty"`
	Tags           pq.StringArray `db:"tags" json:"tags,omitempty"`
	AcceptanceRate float64        `db:"acceptance_rate" json:"acceptanceRate"`
	IsSolved       bool           `db:"is_solved" json:"isSolved"`
}

// QuestionFilter narrows problem listings.
type QuestionFilter struct {
	Topic        string
	Difficulties []Difficulty
	Search       string
	Type         QuestionType
	// SolvedBy and Status are only honoured together: Status is "solved" or "unsolved".
	SolvedBy string
	Status   string
	Page     int
	Limit    int
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type TopicCount struct {
	Topic string `db:"topic" json:"topic"`
	Count int    `db:"count" json:"count"`
}

// QuestionOverview aggregates problem counts for the browse page.
type QuestionOverview struct {
	Total      int            `json:"total"`
	Difficulty map[string]int `json:"difficulty"`
	Topics     []TopicCount   `json:"topics"`
}

type QuestionTable struct {
	QuestionID       string
	Type             string
	Title            string
	Description      string
	Difficulty       string
	Topic            string
	FunctionName     string
	TimeLimit        string
	Constraints      string
	TestCases        string
	Examples         string
	Tags             string
	StarterCode      string
	TotalSubmissions string
	TotalAccepted    string
	CreatedAt        string
}

func GetQuestionTable() QuestionTable {
	return QuestionTable{
		QuestionID:       "question_id",
		Type:             "type",
		Title:            "title",
		Description:      "description",
		Difficulty:       "difficulty",
		Topic:            "topic",
		FunctionName:     "function_name",
		TimeLimit:        "time_limit",
		Constraints:      "constraints",
		TestCases:        "test_cases",
		Examples:         "examples",
		Tags:             "tags",
		StarterCode:      "starter_code",
		TotalSubmissions: "total_submissions",
		TotalAccepted:    "total_accepted",
		CreatedAt:        "created_at",
	}
}

func (QuestionTable) TableName() string {
	return "questions"
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonScan(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}

// QuestionCategory describes a question type for the category picker.
type QuestionCategory struct {
	ID          QuestionType `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
}

var QuestionCategories = []QuestionCategory{
	{ID: QuestionTypeDSA, Name: "Data Structures & Algorithms", Description: "Practice DSA problems", Icon: "🧩"},
	{ID: QuestionTypeProgramming, Name: "Programming Basics", Description: "Core programming concepts", Icon: "💻"},
}

// ParseDifficulty accepts any casing of Easy, Medium or Hard.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}
