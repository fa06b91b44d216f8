package coding

// SubmitRequest is the body of POST /api/coding/submit. TimeTaken is a
// pointer so that an explicit zero can be told apart from a missing field.
type SubmitRequest struct {
	QuestionID string   `json:"questionId"`
	Language   string   `json:"language"`
	Code       string   `json:"code"`
	TimeTaken  *float64 `json:"timeTaken"`
}

func (r *SubmitRequest) complete() bool {
	return r.QuestionID != "" && r.Language != "" && r.Code != "" && r.TimeTaken != nil
}
