package domain

import "strings"

// Language is a submission language accepted by the grading pipeline.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
	LanguageC          Language = "c"
)

// LanguageInfo describes a language for the language picker.
type LanguageInfo struct {
	ID   Language `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// SupportedLanguages is the ordered list shown to clients.
var SupportedLanguages = []LanguageInfo{
	{ID: LanguageC, Name: "C", Icon: "🔷"},
	{ID: LanguageCpp, Name: "C++", Icon: "🔶"},
	{ID: LanguageJava, Name: "Java", Icon: "☕"},
	{ID: LanguagePython, Name: "Python", Icon: "🐍"},
	{ID: LanguageJavaScript, Name: "JavaScript", Icon: "🟨"},
}

// ParseLanguage maps a client supplied identifier to a Language.
func ParseLanguage(raw string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if !lang.Valid() {
		return "", ErrUnsupportedLanguage
	}
	return lang, nil
}

func (l Language) Valid() bool {
	switch l {
	case LanguagePython, LanguageJavaScript, LanguageJava, LanguageCpp, LanguageC:
		return true
	}
	return false
}

// Interpreted reports whether the language has no separate compile step,
// so syntax errors surface at run time.
func (l Language) Interpreted() bool {
	return l == LanguagePython || l == LanguageJavaScript
}
