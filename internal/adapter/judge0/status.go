package judge0

import (
	"fmt"
	"strings"

	"gitlab.com/codeprep.net/internal/domain"
)

// Judge0 CE status ids.
const (
	statusInQueue           = 1
	statusProcessing        = 2
	statusAccepted          = 3
	statusWrongAnswer       = 4
	statusTimeLimitExceeded = 5
	statusCompilationError  = 6
	statusRuntimeSIGSEGV    = 7
	statusRuntimeSIGXFSZ    = 8
	statusRuntimeSIGFPE     = 9
	statusRuntimeSIGABRT    = 10
	statusRuntimeNZEC       = 11
	statusRuntimeOther      = 12
	statusInternalError     = 13
	statusExecFormatError   = 14
)

var languageIDs = map[domain.Language]int{
	domain.LanguageC:          50,
	domain.LanguageCpp:        54,
	domain.LanguageJava:       62,
	domain.LanguageJavaScript: 63,
	domain.LanguagePython:     71,
}

// LanguageID returns the Judge0 language id for a supported language.
func LanguageID(lang domain.Language) (int, bool) {
	id, ok := languageIDs[lang]
	return id, ok
}

var interpreterSyntaxErrors = []string{"SyntaxError", "IndentationError", "TabError"}

// classify maps a finished submission onto the grading taxonomy.
func classify(lang domain.Language, res *submissionResult) domain.ExecutionOutcome {
	out := domain.ExecutionOutcome{
		Stdout: res.Stdout,
		Stderr: res.Stderr,
	}

	switch id := res.Status.ID; {
	case id == statusAccepted || id == statusWrongAnswer:
		out.Classification = domain.ClassSuccess
	case id == statusTimeLimitExceeded:
		out.Classification = domain.ClassTimeLimitExceeded
		out.Message = "Time Limit Exceeded"
	case id == statusCompilationError:
		out.Classification = domain.ClassCompilationError
		out.Message = "Compilation Error: " + firstNonEmpty(res.CompileOutput, res.Stderr, res.Message, res.Status.Description)
	case id >= statusRuntimeSIGSEGV && id <= statusRuntimeOther:
		out.Classification = domain.ClassRuntimeError
		detail := firstNonEmpty(res.Stderr, res.Message, res.Status.Description)
		if lang.Interpreted() && containsAny(res.Stderr, interpreterSyntaxErrors) {
			out.Classification = domain.ClassCompilationError
			out.Message = "Compilation Error: " + detail
			break
		}
		out.Message = "Runtime Error: " + detail
	default:
		out.Classification = domain.ClassInfrastructureError
		out.Message = fmt.Sprintf("Execution error: %s", firstNonEmpty(res.Message, res.Status.Description, fmt.Sprintf("status %d", id)))
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
