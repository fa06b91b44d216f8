package grading

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	blankLinesRe  = regexp.MustCompile(`\n{2,}`)
	afterCommaRe  = regexp.MustCompile(`,\s+`)
	afterOpenRe   = regexp.MustCompile(`([\[{])\s+`)
	beforeCloseRe = regexp.MustCompile(`\s+([\]}])`)
	afterColonRe  = regexp.MustCompile(`:\s+`)
	trueTokenRe   = regexp.MustCompile(`\bTrue\b`)
	falseTokenRe  = regexp.MustCompile(`\bFalse\b`)
	noneTokenRe   = regexp.MustCompile(`\bNone\b`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes program output so that superficially different
// renderings of the same value compare equal. The comparison is lossy:
// case is folded, so "True" returned as a string matches the boolean true.
func Normalize(raw string) string {
	out := strings.TrimSpace(raw)
	out = strings.ReplaceAll(out, "\r\n", "\n")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(strings.TrimRightFunc(line, unicode.IsSpace), unicode.IsSpace)
	}
	out = strings.Join(lines, "\n")
	out = blankLinesRe.ReplaceAllString(out, "\n")

	out = afterCommaRe.ReplaceAllString(out, ",")
	out = afterOpenRe.ReplaceAllString(out, "$1")
	out = beforeCloseRe.ReplaceAllString(out, "$1")
	out = afterColonRe.ReplaceAllString(out, ":")

	out = trueTokenRe.ReplaceAllString(out, "true")
	out = falseTokenRe.ReplaceAllString(out, "false")
	out = noneTokenRe.ReplaceAllString(out, "null")

	out = whitespaceRun.ReplaceAllString(out, " ")
	return strings.ToLower(out)
}

// OutputsMatch reports whether actual and expected are equal after normalization.
func OutputsMatch(actual, expected string) bool {
	return Normalize(actual) == Normalize(expected)
}
