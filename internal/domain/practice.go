package domain

import (
	"math"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SampleTestCase is a visible test case without the hidden flag.
type SampleTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// PracticeQuestion is a question as served to a user: hidden cases removed.
type PracticeQuestion struct {
	QuestionID       string           `json:"questionId"`
	Type             QuestionType     `json:"type"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Difficulty       Difficulty       `json:"difficulty"`
	Topic            string           `json:"topic,omitempty"`
	FunctionName     string           `json:"functionName"`
	TimeLimit        int              `json:"timeLimit"`
	Constraints      string           `json:"constraints,omitempty"`
	Examples         Examples         `json:"examples,omitempty"`
	Tags             pq.StringArray   `json:"tags,omitempty"`
	StarterCode      StarterCode      `json:"starterCode,omitempty"`
	SampleTestCases  []SampleTestCase `json:"sampleTestCases"`
	AcceptanceRate   float64          `json:"acceptanceRate"`
	TotalSubmissions int              `json:"totalSubmissions"`
}

func (q *Question) Practice() *PracticeQuestion {
	samples := q.TestCases.Samples()
	out := make([]SampleTestCase, 0, len(samples))
	for _, tc := range samples {
		out = append(out, SampleTestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}
	return &PracticeQuestion{
		QuestionID:       q.QuestionID,
		Type:             q.Type,
		Title:            q.Title,
		Description:      q.Description,
		Difficulty:       q.Difficulty,
		Topic:            q.Topic,
		FunctionName:     q.EntryPoint(),
		TimeLimit:        q.TimeLimit,
		Constraints:      q.Constraints,
		Examples:         q.Examples,
		Tags:             q.Tags,
		StarterCode:      q.StarterCode,
		SampleTestCases:  out,
		AcceptanceRate:   q.AcceptanceRate(),
		TotalSubmissions: q.TotalSubmissions,
	}
}

// SubmissionResult is a graded result together with the stored attempt id.
type SubmissionResult struct {
	*GradedResult
	AttemptID uuid.UUID `json:"attemptId"`
}

// RoundedMean averages integer scores, rounding halves up.
func RoundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}

// ProblemPage is one page of the problem browser.
type ProblemPage struct {
	Problems   []*QuestionSummary `json:"problems"`
	Pagination Pagination         `json:"pagination"`
}
