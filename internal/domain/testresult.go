package domain

// Classification is the sandbox outcome of one execution.
type Classification string

const (
	ClassSuccess             Classification = "Success"
	ClassCompilationError    Classification = "CompilationError"
	ClassRuntimeError        Classification = "RuntimeError"
	ClassTimeLimitExceeded   Classification = "TimeLimitExceeded"
	ClassInfrastructureError Classification = "InfrastructureError"
)

// ExecutionOutcome is produced once per sandbox call.
type ExecutionOutcome struct {
	Stdout         string
	Stderr         string
	Message        string
	Classification Classification
	TimeSeconds    float64
	MemoryKB       int64
}

// Failed reports whether the outcome carries no usable program output.
func (o *ExecutionOutcome) Failed() bool {
	return o.Classification != ClassSuccess
}

// TestCaseResult is created once per test case and never mutated afterwards.
type TestCaseResult struct {
	Input          string         `json:"input"`
	ExpectedOutput string         `json:"expectedOutput"`
	ActualOutput   string         `json:"actualOutput"`
	Passed         bool           `json:"passed"`
	Error          string         `json:"error,omitempty"`
	Outcome        Classification `json:"-"`
}

// Status is the submission level verdict.
type Status string

const (
	StatusCorrect           Status = "Correct"
	StatusWrongAnswer       Status = "Wrong Answer"
	StatusRuntimeError      Status = "Runtime Error"
	StatusTimeLimitExceeded Status = "Time Limit Exceeded"
	StatusCompilationError  Status = "Compilation Error"
)

// Verdict is what the scoring engine derives from a set of case results.
type Verdict struct {
	Status       Status
	Score        int
	Feedback     string
	ErrorMessage string
}

// GradedResult is returned to the caller of the grading pipeline.
type GradedResult struct {
	Status          Status           `json:"status"`
	Score           int              `json:"score"`
	TestCasesPassed int              `json:"testCasesPassed"`
	TotalTestCases  int              `json:"totalTestCases"`
	TimeTaken       float64          `json:"timeTaken"`
	Feedback        string           `json:"feedback"`
	ErrorMessage    string           `json:"errorMessage,omitempty"`
	TestResults     []TestCaseResult `json:"testResults"`
}
