// Package yamllint checks YAML documents against a yamllint-compatible rule
// set. Cosmetic rules work on raw lines; structural rules (duplicate keys,
// truthy values, indentation) work on the yaml.v3 node tree.
package yamllint

import (
	"errors"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Problem is one finding. Line and Column are 1-based.
type Problem struct {
	Line    int
	Column  int
	Level   string
	Message string
	Rule    string
}

type linter struct {
	cfg      *Config
	lines    []line
	problems []Problem

	// scanner state carried across lines
	quote      byte
	flow       int
	blockLimit int
}

// Lint returns every problem found in content, ordered by position. A nil
// cfg means DefaultConfig.
func Lint(content string, cfg *Config) []Problem {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &linter{cfg: cfg, lines: splitLines(content), blockLimit: -1}

	l.scan()
	l.checkLines(content)

	if syn, ok := syntaxError(content); ok {
		l.problems = append(l.problems, syn)
	} else {
		l.checkTree(content)
	}

	sort.SliceStable(l.problems, func(i, j int) bool {
		a, b := l.problems[i], l.problems[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return l.problems
}

func (l *linter) report(rule string, ln, col int, msg string) {
	r, ok := l.cfg.rule(rule)
	if !ok {
		return
	}
	l.problems = append(l.problems, Problem{Line: ln, Column: col, Level: r.level, Message: msg, Rule: rule})
}

var yamlErrLine = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func syntaxError(content string) (Problem, bool) {
	dec := yaml.NewDecoder(strings.NewReader(content))
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			return Problem{}, false
		}
		if err != nil {
			p := Problem{Line: 1, Column: 1, Level: LevelError, Rule: "syntax"}
			msg := err.Error()
			if m := yamlErrLine.FindStringSubmatch(msg); m != nil {
				p.Line, _ = strconv.Atoi(m[1])
				msg = m[2]
			} else {
				msg = strings.TrimPrefix(msg, "yaml: ")
			}
			p.Message = "syntax error: " + msg
			return p, true
		}
	}
}

// column converts a byte offset in s to a 1-based character column.
func column(s string, i int) int {
	if i > len(s) {
		i = len(s)
	}
	return utf8.RuneCountInString(s[:i]) + 1
}
