package domain

// SubmissionRequest is the ephemeral grading input built per call.
type SubmissionRequest struct {
	QuestionID string
	Language   Language
	Code       string
	// TimeTaken is the elapsed time the client reports, in seconds.
	TimeTaken float64
}
