package grading

import (
	"fmt"
	"math"

	"gitlab.com/codeprep.net/internal/domain"
)

const (
	correctnessWeight = 70
	speedWeight       = 20
	qualityBonus      = 10
	maxScore          = 100
)

const (
	feedbackCorrect          = "Great job! All test cases passed."
	feedbackCompilationError = "Your code has compilation errors. Please check syntax."
	feedbackRuntimeError     = "Your code encountered a runtime error. Check for null pointers, array bounds, etc."
	feedbackWrongAnswer      = "You passed %d out of %d test cases. Review your logic for edge cases."
	feedbackTimeLimit        = "You exceeded the time limit for this question."
)

// ExceedsTimeLimit reports whether the elapsed time is over the question budget.
func ExceedsTimeLimit(timeTakenSeconds float64, timeLimitMinutes int) bool {
	return timeTakenSeconds > float64(timeLimitMinutes)*60
}

// TimeLimitVerdict is the fixed result for a submission that ran out of time.
func TimeLimitVerdict(timeLimitMinutes int) domain.Verdict {
	return domain.Verdict{
		Status:       domain.StatusTimeLimitExceeded,
		Score:        0,
		Feedback:     feedbackTimeLimit,
		ErrorMessage: fmt.Sprintf("time limit of %d minutes exceeded", timeLimitMinutes),
	}
}

// Score derives status, score and feedback from the per-case results.
func Score(results []domain.TestCaseResult, timeTakenSeconds float64, timeLimitMinutes int) domain.Verdict {
	if ExceedsTimeLimit(timeTakenSeconds, timeLimitMinutes) {
		return TimeLimitVerdict(timeLimitMinutes)
	}

	passed := countPassed(results)
	total := len(results)

	var base int
	if total > 0 {
		base = jsRound(float64(passed) / float64(total) * correctnessWeight)
	}

	limitSeconds := float64(timeLimitMinutes) * 60
	var timeBonus int
	if limitSeconds > 0 {
		timeBonus = jsRound((1 - timeTakenSeconds/limitSeconds) * speedWeight)
	}
	timeBonus = clamp(timeBonus, 0, speedWeight)

	var quality int
	if total > 0 && passed == total {
		quality = qualityBonus
	}

	verdict := domain.Verdict{
		Score:  min(base+timeBonus+quality, maxScore),
		Status: domain.StatusCorrect,
	}

	switch {
	case firstWith(results, domain.ClassCompilationError) >= 0:
		verdict.Status = domain.StatusCompilationError
		verdict.Feedback = feedbackCompilationError
		verdict.ErrorMessage = results[firstWith(results, domain.ClassCompilationError)].Error
	case firstWith(results, domain.ClassRuntimeError) >= 0:
		verdict.Status = domain.StatusRuntimeError
		verdict.Feedback = feedbackRuntimeError
		verdict.ErrorMessage = results[firstWith(results, domain.ClassRuntimeError)].Error
	case passed < total || total == 0:
		verdict.Status = domain.StatusWrongAnswer
		verdict.Feedback = fmt.Sprintf(feedbackWrongAnswer, passed, total)
		verdict.ErrorMessage = firstFailureMessage(results)
	default:
		verdict.Feedback = feedbackCorrect
	}

	return verdict
}

func countPassed(results []domain.TestCaseResult) int {
	n := 0
	for _, r := range results {
		if r.Passed {
			n++
		}
	}
	return n
}

func firstWith(results []domain.TestCaseResult, class domain.Classification) int {
	for i, r := range results {
		if r.Outcome == class {
			return i
		}
	}
	return -1
}

func firstFailureMessage(results []domain.TestCaseResult) string {
	for _, r := range results {
		if !r.Passed {
			return r.Error
		}
	}
	return ""
}

// jsRound rounds half up, matching the rounding the score weights were tuned with.
func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
