package yamllint

import (
	"strings"
	"testing"
)

func find(ps []Problem, rule string) (Problem, bool) {
	for _, p := range ps {
		if p.Rule == rule {
			return p, true
		}
	}
	return Problem{}, false
}

func TestLint_CleanDocuments(t *testing.T) {
	docs := map[string]string{
		"model": `---
name: mistral
parameters:
  model: mistral.gguf
  temperature: 0.2
stopwords:
  - "<|im_end|>"
  - "</s>"
f16: true
template:
  chat: |
    {{.Input}}
    key:    value   with: odd [ spacing ]
`,
		"flow":       "---\nports: [80, 443]\nenv: {a: 1, b: 2}\nempty: []\n",
		"multiline":  "---\nmsg: \"a,b\n  c:   d\"\nnext: 1\n",
		"comments":   "#!/usr/bin/env yamllint\n---\n# top\na:\n  # inner\n  b: 1  # trailing\n",
		"documents":  "---\na: 1\n...\n---\nb: 2\n",
		"empty file": "",
	}
	for name, doc := range docs {
		if ps := Lint(doc, nil); len(ps) != 0 {
			t.Fatalf("%s: expected no problems, got %+v", name, ps)
		}
	}
}

func TestLint_ViolationsCarryLines(t *testing.T) {
	ps := Lint("key: value   \nother:    x\n", nil)
	if len(ps) != 3 {
		t.Fatalf("expected 3 problems, got %+v", ps)
	}
	want := []struct {
		rule  string
		line  int
		level string
	}{
		{"document-start", 1, LevelWarning},
		{"trailing-spaces", 1, LevelError},
		{"colons", 2, LevelError},
	}
	for i, w := range want {
		p := ps[i]
		if p.Rule != w.rule || p.Line != w.line || p.Level != w.level {
			t.Fatalf("problem %d: got %+v want %+v", i, p, w)
		}
	}
	if ps[1].Column != 11 {
		t.Fatalf("trailing spaces column: %d", ps[1].Column)
	}
}

func TestLint_Rules(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		rule string
		line int
		msg  string
	}{
		{"duplicate key", "---\na: 1\na: 2\n", "key-duplicates", 3, `duplication of key "a" in mapping`},
		{"truthy", "---\nenabled: yes\n", "truthy", 2, "truthy value should be one of [false, true]"},
		{"unindented sequence", "---\nlist:\n- a\n", "indentation", 3, "wrong indentation: expected 2 but found 0"},
		{"inconsistent indent", "---\nroot:\n    child: 1\nother:\n  x: 1\n", "indentation", 5, "wrong indentation: expected 4 but found 2"},
		{"line length", "---\nkey: " + strings.Repeat("word ", 20) + "end\n", "line-length", 2, "line too long (108 > 80 characters)"},
		{"blank lines", "---\na: 1\n\n\n\nb: 2\n", "empty-lines", 5, "too many blank lines (3 > 2)"},
		{"blank at end", "---\na: 1\n\n", "empty-lines", 3, "too many blank lines (1 > 0)"},
		{"blank at start", "\n---\na: 1\n", "empty-lines", 1, "too many blank lines (1 > 0)"},
		{"missing newline", "---\na: 1", "new-line-at-end-of-file", 2, "no new line character at the end of file"},
		{"crlf", "---\r\na: 1\r\n", "new-lines", 1, `wrong new line character: expected \n`},
		{"comment space", "---\na: 1  #bad\n", "comments", 2, "missing starting space in comment"},
		{"comment distance", "---\na: 1 # ok\n", "comments", 2, "too few spaces before comment"},
		{"comment indent", "---\na:\n  b: 1\n    # off\n  c: 2\n", "comments-indentation", 4, "comment not indented like content"},
		{"hyphen", "---\n-   a\n", "hyphens", 2, "too many spaces after hyphen"},
		{"comma", "---\na: [1,2]\n", "commas", 2, "too few spaces after comma"},
		{"brackets", "---\na: [ 1]\n", "brackets", 2, "too many spaces inside brackets"},
		{"braces", "---\na: {b: 1 }\n", "braces", 2, "too many spaces inside braces"},
		{"colon before", "---\na : 1\n", "colons", 2, "too many spaces before colon"},
	}
	for _, c := range cases {
		ps := Lint(c.doc, nil)
		p, ok := find(ps, c.rule)
		if !ok {
			t.Fatalf("%s: no %s problem in %+v", c.name, c.rule, ps)
		}
		if p.Line != c.line || p.Message != c.msg {
			t.Fatalf("%s: got line %d %q, want line %d %q", c.name, p.Line, p.Message, c.line, c.msg)
		}
	}
}

func TestLint_NonBreakableWordsAllowed(t *testing.T) {
	doc := "---\n- " + strings.Repeat("x", 100) + "\n# " + strings.Repeat("y", 100) + "\n"
	if p, ok := find(Lint(doc, nil), "line-length"); ok {
		t.Fatalf("unexpected %+v", p)
	}
}

func TestLint_SyntaxError(t *testing.T) {
	ps := Lint("---\na: b: c\n", nil)
	p, ok := find(ps, "syntax")
	if !ok {
		t.Fatalf("expected syntax problem, got %+v", ps)
	}
	if p.Line != 2 || p.Level != LevelError || !strings.HasPrefix(p.Message, "syntax error: ") {
		t.Fatalf("unexpected %+v", p)
	}
}

func TestLint_SortedByPosition(t *testing.T) {
	ps := Lint("a: yes \nb:  [ 1 ]\n", nil)
	for i := 1; i < len(ps); i++ {
		a, b := ps[i-1], ps[i]
		if a.Line > b.Line || (a.Line == b.Line && a.Column > b.Column) {
			t.Fatalf("not sorted: %+v", ps)
		}
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("extends: default\nrules:\n  document-start: disable\n  line-length:\n    max: 120\n    level: warning\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := "a: " + strings.Repeat("word ", 20) + "end\n"
	if ps := Lint(doc, cfg); len(ps) != 0 {
		t.Fatalf("expected clean with relaxed config, got %+v", ps)
	}
	ps := Lint("a: "+strings.Repeat("word ", 30)+"end\n", cfg)
	if len(ps) != 1 || ps[0].Level != LevelWarning {
		t.Fatalf("expected one warning, got %+v", ps)
	}

	bad := []string{
		"extends: relaxed\n",
		"rules:\n  no-such-rule: enable\n",
		"rules:\n  quoted-strings: enable\n",
		"rules:\n  colons: sometimes\n",
		"rules:\n  colons:\n    level: fatal\n",
		"rules:\n  colons:\n    max-spaces-around: 1\n",
	}
	for _, src := range bad {
		if _, err := ParseConfig(src); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}

func TestParseConfig_WithoutExtendsStartsEmpty(t *testing.T) {
	cfg, err := ParseConfig("rules:\n  trailing-spaces: enable\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ps := Lint("a: yes \n", cfg)
	if len(ps) != 1 || ps[0].Rule != "trailing-spaces" {
		t.Fatalf("expected only trailing-spaces, got %+v", ps)
	}
}

func TestParseConfig_UnimplementedRulesRejected(t *testing.T) {
	for _, name := range []string{"document-end", "empty-values", "float-values", "key-ordering", "octal-values", "quoted-strings"} {
		for _, src := range []string{
			"rules:\n  " + name + ": enable\n",
			"extends: default\nrules:\n  " + name + ":\n    level: warning\n",
		} {
			if _, err := ParseConfig(src); err == nil || !strings.Contains(err.Error(), "not supported") {
				t.Fatalf("%q: expected not supported error, got %v", src, err)
			}
		}
		if _, err := ParseConfig("rules:\n  " + name + ": disable\n"); err != nil {
			t.Fatalf("disabling %s: %v", name, err)
		}
	}
}
