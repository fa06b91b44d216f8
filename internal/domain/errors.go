package domain

import "errors"

var (
	// ErrUnsupportedLanguage is returned before any execution for unknown languages.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrQuestionNotFound indicates the question id is unknown.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrNoTestCases means the question cannot accept submissions.
	ErrNoTestCases = errors.New("question has no test cases")

	// ErrInvalidFunctionName is returned when a harness cannot safely reference the entry point.
	ErrInvalidFunctionName = errors.New("invalid function name")

	// ErrInvalidQuestionType indicates a category other than DSA or Programming.
	ErrInvalidQuestionType = errors.New("invalid question type")

	// ErrInvalidCategory indicates an unknown interview category.
	ErrInvalidCategory = errors.New("invalid interview category")

	// ErrInvalidSubmission covers missing or malformed submission fields.
	ErrInvalidSubmission = errors.New("invalid submission")

	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrNoQuestions means a random pick had nothing to choose from.
	ErrNoQuestions = errors.New("no questions found for this category")

	ErrInvalidContribution = errors.New("invalid contribution")

	// ErrInvalidReview is a review status other than approved or rejected.
	ErrInvalidReview = errors.New("invalid review status")

	ErrContributionNotFound = errors.New("contribution not found")

	// ErrContributionReviewed means the contribution already left the pending queue.
	ErrContributionReviewed = errors.New("contribution already reviewed")
)
