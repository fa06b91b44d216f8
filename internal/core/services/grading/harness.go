package grading

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/codeprep.net/internal/domain"
)

// Harness turns a bare user function into a runnable program that parses
// the literal test input, calls the function and prints its result.
type Harness interface {
	Wrap(code, input, functionName string) (string, error)
}

// HarnessFunc adapts a function to the Harness interface.
type HarnessFunc func(code, input, functionName string) (string, error)

func (f HarnessFunc) Wrap(code, input, functionName string) (string, error) {
	return f(code, input, functionName)
}

// Java, C++ and C have no driver yet: the program is graded on whatever it
// prints, with the test input available on stdin.
var harnesses = map[domain.Language]Harness{
	domain.LanguagePython:     HarnessFunc(wrapPython),
	domain.LanguageJavaScript: HarnessFunc(wrapJavaScript),
	domain.LanguageJava:       HarnessFunc(passthrough),
	domain.LanguageCpp:        HarnessFunc(passthrough),
	domain.LanguageC:          HarnessFunc(passthrough),
}

var (
	pythonIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	jsIdentRe     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

var pythonKeywords = wordSet(`False None True and as assert async await break class continue def del elif
else except finally for from global if import in is lambda nonlocal not or pass raise return try while with yield`)

var javascriptReserved = wordSet(`await break case catch class const continue debugger default delete do else enum
export extends false finally for function if implements import in instanceof interface let new null package
private protected public return static super switch this throw true try typeof var void while with yield`)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

func validIdent(name string, re *regexp.Regexp, reserved map[string]struct{}) bool {
	if !re.MatchString(name) {
		return false
	}
	_, taken := reserved[name]
	return !taken
}

// Wrap generates the complete program for one test case.
func Wrap(code string, language domain.Language, input, functionName string) (string, error) {
	h, ok := harnesses[language]
	if !ok {
		return "", domain.ErrUnsupportedLanguage
	}
	return h.Wrap(code, strings.ReplaceAll(input, "\r\n", "\n"), functionName)
}

// HasDriver reports whether the language gets a generated driver rather than passthrough.
func HasDriver(language domain.Language) bool {
	return language == domain.LanguagePython || language == domain.LanguageJavaScript
}

func passthrough(code, _, _ string) (string, error) {
	return code, nil
}

const pythonDriver = `

import sys as _h_sys
import json as _h_json
import re as _h_re

_H_INT = _h_re.compile(r'^[+-]?\d+$')
_H_FLOAT = _h_re.compile(r'^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$')


def _h_parse(line):
    s = line.strip()
    if s.startswith('[') or s.startswith('{'):
        try:
            return _h_json.loads(s)
        except Exception:
            pass
        import ast as _h_ast
        try:
            return _h_ast.literal_eval(s)
        except Exception:
            return line
    if s.lower() == 'true':
        return True
    if s.lower() == 'false':
        return False
    if _H_INT.match(s):
        return int(s)
    if _H_FLOAT.match(s):
        return float(s)
    return line


def _h_format(value):
    if isinstance(value, bool):
        return 'true' if value else 'false'
    if isinstance(value, (list, tuple, dict)):
        try:
            return _h_json.dumps(value, separators=(',', ':'))
        except (TypeError, ValueError):
            return str(value)
    return str(value)


def _h_entry(name):
    fn = globals().get(name)
    if callable(fn) and not isinstance(fn, type):
        return fn
    cls = globals().get('Solution')
    if isinstance(cls, type) and hasattr(cls, name):
        return getattr(cls(), name)
    return None


_h_input = %s
_h_args = [_h_parse(l) for l in _h_input.split('\n')] if _h_input != '' else []
_h_fn = _h_entry('%s')
if _h_fn is None:
    _h_sys.stderr.write("Function '%s' not found\n")
    _h_sys.exit(1)
_h_result = _h_fn(*_h_args)
if _h_result is not None:
    print(_h_format(_h_result))
`

func wrapPython(code, input, functionName string) (string, error) {
	if !validIdent(functionName, pythonIdentRe, pythonKeywords) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFunctionName, functionName)
	}
	return code + fmt.Sprintf(pythonDriver, pythonString(input), functionName, functionName), nil
}

const javascriptDriver = `

;(function () {
  const __input = %s;
  const __parse = function (line) {
    const s = line.trim();
    if (s.startsWith('[') || s.startsWith('{')) {
      try { return JSON.parse(s); } catch (e) { return line; }
    }
    const lower = s.toLowerCase();
    if (lower === 'true') return true;
    if (lower === 'false') return false;
    if (/^[+-]?\d+$/.test(s)) return parseInt(s, 10);
    if (/^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$/.test(s)) return parseFloat(s);
    return line;
  };
  const __format = function (value) {
    return typeof value === 'object' ? JSON.stringify(value) : String(value);
  };
  const __args = __input === '' ? [] : __input.split('\n').map(__parse);
  if (typeof %s !== 'function') {
    process.stderr.write("Function '%s' not found\n");
    process.exit(1);
  }
  const __result = %s.apply(null, __args);
  if (__result !== undefined && __result !== null) {
    console.log(__format(__result));
  }
})();
`

func wrapJavaScript(code, input, functionName string) (string, error) {
	if !validIdent(functionName, jsIdentRe, javascriptReserved) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFunctionName, functionName)
	}
	return code + fmt.Sprintf(javascriptDriver, javascriptTemplate(input), functionName, functionName, functionName), nil
}

// pythonString renders s as a double quoted Python literal.
func pythonString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// javascriptTemplate renders s as a JavaScript template literal. Newlines
// stay literal; backslashes, backticks and interpolation openers are escaped.
func javascriptTemplate(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('`')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '`':
			b.WriteString("\\`")
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString(`\$`)
		case c == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('`')
	return b.String()
}
