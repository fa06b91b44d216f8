package grading

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/codeprep.net/internal/domain"
)

const (
	pyValidParens = `def isValid(s):
    pairs = {')': '(', ']': '[', '}': '{'}
    stack = []
    for c in s:
        if c in pairs:
            if not stack or stack.pop() != pairs[c]:
                return False
        else:
            stack.append(c)
    return not stack
`
	jsValidParens = `function isValid(s) {
  const pairs = { ')': '(', ']': '[', '}': '{' };
  const stack = [];
  for (const c of s) {
    if (pairs[c]) {
      if (stack.pop() !== pairs[c]) return false;
    } else {
      stack.push(c);
    }
  }
  return stack.length === 0;
}
`
)

type driverCase struct {
	name     string
	fn       string
	input    string
	py, js   string
	wantPy   string
	wantJS   string
	notFound bool
}

var driverCases = []driverCase{
	{
		name: "json array", fn: "f", input: "[1, 2, 3]",
		py: "def f(a):\n    return a\n", js: "function f(a) { return a; }",
		wantPy: "[1,2,3]", wantJS: "[1,2,3]",
	},
	{
		name: "two arguments", fn: "twoSum", input: "[2,7,11,15]\n9",
		py: twoSumCorrect, js: "function twoSum(nums, target) { const seen = {}; for (let i = 0; i < nums.length; i++) { if (seen[target - nums[i]] !== undefined) return [seen[target - nums[i]], i]; seen[nums[i]] = i; } return []; }",
		wantPy: "[0,1]", wantJS: "[0,1]",
	},
	{
		name: "python literal", fn: "f", input: "[True, None]",
		py: "def f(a):\n    return a\n", js: "function f(a) { return a; }",
		wantPy: "[true,null]", wantJS: "[True, None]",
	},
	{
		name: "unparseable brackets stay text", fn: "isValid", input: "{[()]}",
		py: pyValidParens, js: jsValidParens,
		wantPy: "true", wantJS: "true",
	},
	{
		name: "unbalanced brackets stay text", fn: "isValid", input: "([)]",
		py: pyValidParens, js: jsValidParens,
		wantPy: "false", wantJS: "false",
	},
	{
		name: "boolean any case", fn: "f", input: "TRUE",
		py: "def f(a):\n    return a is True\n", js: "function f(a) { return a === true; }",
		wantPy: "true", wantJS: "true",
	},
	{
		name: "negative integer", fn: "f", input: "-3",
		py: "def f(a):\n    return a * 2\n", js: "function f(a) { return a * 2; }",
		wantPy: "-6", wantJS: "-6",
	},
	{
		name: "exponent float", fn: "f", input: "1e3",
		py: "def f(a):\n    return a + 1\n", js: "function f(a) { return a + 1; }",
		wantPy: "1001.0", wantJS: "1001",
	},
	{
		name: "padded bare string", fn: "f", input: "  hello  ",
		py: "def f(a):\n    return '<' + a + '>'\n", js: "function f(a) { return '<' + a + '>'; }",
		wantPy: "<  hello  >", wantJS: "<  hello  >",
	},
	{
		name: "no return value prints nothing", fn: "f", input: "1",
		py: "def f(a):\n    return None\n", js: "function f(a) {}",
	},
	{
		name: "solution class", fn: "f", input: "41",
		py: "class Solution:\n    def f(self, a):\n        return a + 1\n",
		wantPy: "42",
	},
	{
		name: "missing function", fn: "f", input: "1",
		py: "def other(a):\n    return a\n", js: "function other(a) { return a; }",
		notFound: true,
	},
}

func TestDriversRun(t *testing.T) {
	runners := []struct {
		lang   domain.Language
		bin    string
		ext    string
		code   func(driverCase) string
		expect func(driverCase) string
	}{
		{domain.LanguagePython, "python3", ".py", func(c driverCase) string { return c.py }, func(c driverCase) string { return c.wantPy }},
		{domain.LanguageJavaScript, "node", ".js", func(c driverCase) string { return c.js }, func(c driverCase) string { return c.wantJS }},
	}

	for _, r := range runners {
		r := r
		t.Run(string(r.lang), func(t *testing.T) {
			bin, err := exec.LookPath(r.bin)
			if err != nil {
				t.Skipf("%s not installed", r.bin)
			}
			for _, c := range driverCases {
				code := r.code(c)
				if code == "" {
					continue
				}
				c := c
				t.Run(c.name, func(t *testing.T) {
					program, err := Wrap(code, r.lang, c.input, c.fn)
					if err != nil {
						t.Fatalf("Wrap: %v", err)
					}
					path := filepath.Join(t.TempDir(), "main"+r.ext)
					if err := os.WriteFile(path, []byte(program), 0o600); err != nil {
						t.Fatalf("write program: %v", err)
					}

					var stdout, stderr bytes.Buffer
					cmd := exec.Command(bin, path)
					cmd.Stdout = &stdout
					cmd.Stderr = &stderr
					runErr := cmd.Run()

					if c.notFound {
						if runErr == nil {
							t.Fatalf("expected non-zero exit, stdout=%q", stdout.String())
						}
						if want := "Function '" + c.fn + "' not found"; !strings.Contains(stderr.String(), want) {
							t.Fatalf("stderr = %q, want %q", stderr.String(), want)
						}
						return
					}
					if runErr != nil {
						t.Fatalf("run: %v\nstderr: %s", runErr, stderr.String())
					}
					got := strings.TrimSuffix(stdout.String(), "\n")
					if got != r.expect(c) {
						t.Fatalf("stdout = %q, want %q", got, r.expect(c))
					}
					if r.expect(c) != "" && !OutputsMatch(stdout.String(), r.expect(c)) {
						t.Fatalf("output %q does not match %q after normalisation", stdout.String(), r.expect(c))
					}
				})
			}
		})
	}
}
