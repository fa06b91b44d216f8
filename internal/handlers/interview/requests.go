package interview

type SubmitRequest struct {
	Category  string  `json:"category"`
	Answers   []int   `json:"answers"`
	TimeTaken float64 `json:"timeTaken"`
}
